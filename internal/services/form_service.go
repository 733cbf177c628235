package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sitetive/forms-backend/internal/dto"
	"github.com/sitetive/forms-backend/internal/models"
	"github.com/sitetive/forms-backend/internal/repository"
)

// ErrInvalidForm marks payloads that fail form validation. The central
// error handler maps it to 400.
var ErrInvalidForm = errors.New("invalid form")

type FormService struct {
	forms repository.Forms
}

func NewFormService(forms repository.Forms) *FormService {
	return &FormService{forms: forms}
}

func (s *FormService) List(ctx context.Context) ([]models.Form, error) {
	return s.forms.List(ctx)
}

func (s *FormService) Get(ctx context.Context, id uint) (*models.Form, error) {
	return s.forms.ByID(ctx, id)
}

func (s *FormService) Create(ctx context.Context, req *dto.CreateFormRequest) (*models.Form, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidForm)
	}

	fields, err := normalizeFields(req.Fields)
	if err != nil {
		return nil, err
	}

	createdAt := req.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	form := &models.Form{
		Title:       req.Title,
		Description: req.Description,
		Fields:      fields,
		CreatedAt:   createdAt,
	}
	if err := s.forms.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// Update merges the request into the stored form. The builder sends the
// whole field list on save, so a present Fields member is a full replace.
func (s *FormService) Update(ctx context.Context, id uint, req *dto.UpdateFormRequest) (*models.Form, error) {
	form, err := s.forms.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidForm)
		}
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = *req.Description
	}
	if req.CreatedAt != nil {
		form.CreatedAt = *req.CreatedAt
	}
	if req.Fields != nil {
		fields, err := normalizeFields(*req.Fields)
		if err != nil {
			return nil, err
		}
		form.Fields = fields
	}

	if err := s.forms.Update(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) Delete(ctx context.Context, id uint) error {
	return s.forms.Delete(ctx, id)
}

// normalizeFields validates the field list and fills blank ids. Order is
// preserved exactly as submitted.
func normalizeFields(fields []models.FormField) ([]models.FormField, error) {
	out := make([]models.FormField, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for i, field := range fields {
		if !slices.Contains(models.FieldTypes, field.Type) {
			return nil, fmt.Errorf("%w: unknown field type %q", ErrInvalidForm, field.Type)
		}
		if field.ID == "" {
			field.ID = uuid.NewString()
		}
		if _, dup := seen[field.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate field id %q", ErrInvalidForm, field.ID)
		}
		seen[field.ID] = struct{}{}
		out[i] = field
	}
	return out, nil
}
