package services

import (
	"context"
	"testing"

	"github.com/sitetive/forms-backend/internal/dto"
	"github.com/sitetive/forms-backend/internal/models"
	"github.com/sitetive/forms-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactForm() *dto.CreateFormRequest {
	return &dto.CreateFormRequest{
		Title: "Contact",
		Fields: []models.FormField{
			{ID: "f1", Type: models.FieldText, Label: "Name", Required: true},
			{ID: "f2", Type: models.FieldSelect, Label: "Topic", Options: []string{"Sales", "Support"}},
			{ID: "f3", Type: models.FieldCheckbox, Label: "Subscribe"},
		},
	}
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())

	first, err := svc.Create(context.Background(), contactForm())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), contactForm())
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)

	// Ids are not reused after a delete.
	require.NoError(t, svc.Delete(context.Background(), second.ID))
	third, err := svc.Create(context.Background(), contactForm())
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

func TestFieldListRoundTrips(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())
	req := contactForm()

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, req.Fields, []models.FormField(got.Fields), "order and content preserved")
}

func TestCreateFillsBlankFieldIDs(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())

	form, err := svc.Create(context.Background(), &dto.CreateFormRequest{
		Title:  "Untitled ids",
		Fields: []models.FormField{{Type: models.FieldText, Label: "Name"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, form.Fields[0].ID)
}

func TestCreateValidation(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())

	_, err := svc.Create(context.Background(), &dto.CreateFormRequest{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidForm)

	_, err = svc.Create(context.Background(), &dto.CreateFormRequest{
		Title:  "Bad type",
		Fields: []models.FormField{{ID: "x", Type: "slider", Label: "Nope"}},
	})
	assert.ErrorIs(t, err, ErrInvalidForm)

	_, err = svc.Create(context.Background(), &dto.CreateFormRequest{
		Title: "Dup ids",
		Fields: []models.FormField{
			{ID: "x", Type: models.FieldText, Label: "One"},
			{ID: "x", Type: models.FieldText, Label: "Two"},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestCreateDefaultsCreatedAt(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())

	form, err := svc.Create(context.Background(), &dto.CreateFormRequest{Title: "No timestamp"})
	require.NoError(t, err)
	assert.NotEmpty(t, form.CreatedAt)
}

func TestUpdateMergesPartialPayload(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())

	created, err := svc.Create(context.Background(), contactForm())
	require.NoError(t, err)

	title := "Contact us"
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateFormRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Contact us", updated.Title)
	assert.Equal(t, created.Fields, updated.Fields, "absent members keep the stored value")
}

func TestUpdateReplacesFieldList(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())

	created, err := svc.Create(context.Background(), contactForm())
	require.NoError(t, err)

	replacement := []models.FormField{{ID: "only", Type: models.FieldTextarea, Label: "Message"}}
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateFormRequest{Fields: &replacement})
	require.NoError(t, err)

	assert.Equal(t, replacement, []models.FormField(updated.Fields), "a present field list is a full replace")
}

func TestUpdateUnknownForm(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())

	title := "anything"
	_, err := svc.Update(context.Background(), 42, &dto.UpdateFormRequest{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	svc := NewFormService(repository.NewMemoryForms())

	created, err := svc.Create(context.Background(), contactForm())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), repository.ErrNotFound)
}
