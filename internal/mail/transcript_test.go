package mail

import (
	"strings"
	"testing"

	"github.com/sitetive/forms-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTranscript(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Type: models.FieldText, Label: "Name", Required: true},
		{ID: "f2", Type: models.FieldEmail, Label: "Email"},
		{ID: "f3", Type: models.FieldCheckbox, Label: "Subscribe"},
	}
	data := map[string]interface{}{
		"f1": "Alice",
		"f3": true,
	}

	got := Transcript(fields, data)
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 3, "one line per field in the form")
	assert.Equal(t, "Name: Alice", lines[0])
	assert.Equal(t, "Email: ", lines[1], "fields absent from the payload render empty")
	assert.Equal(t, "Subscribe: true", lines[2])
}

func TestTranscriptPreservesFieldOrder(t *testing.T) {
	fields := []models.FormField{
		{ID: "b", Type: models.FieldText, Label: "Second"},
		{ID: "a", Type: models.FieldText, Label: "First"},
	}
	data := map[string]interface{}{"a": "1", "b": "2"}

	got := Transcript(fields, data)
	assert.Equal(t, "Second: 2\nFirst: 1", got)
}

func TestTranscriptIgnoresUnknownKeys(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Type: models.FieldText, Label: "Name"},
	}
	data := map[string]interface{}{"f1": "Bob", "stray": "ignored"}

	assert.Equal(t, "Name: Bob", Transcript(fields, data))
}

func TestSubmissionBody(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Type: models.FieldText, Label: "Name"},
	}
	body := SubmissionBody("Contact", fields, map[string]interface{}{"f1": "Alice"})

	assert.Contains(t, body, `form "Contact"`)
	assert.Contains(t, body, "Name: Alice")
}
