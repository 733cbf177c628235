package mail

import (
	"fmt"
	"strings"

	"github.com/sitetive/forms-backend/internal/models"
)

// Transcript renders a submission as one "label: value" line per field, in
// the form's field order. Fields absent from the payload render with an
// empty value so the reader still sees every question.
func Transcript(fields []models.FormField, data map[string]interface{}) string {
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, field.Label+": "+formatValue(data[field.ID]))
	}
	return strings.Join(lines, "\n")
}

// SubmissionBody wraps the transcript with a short header naming the form.
func SubmissionBody(formTitle string, fields []models.FormField, data map[string]interface{}) string {
	return fmt.Sprintf("New submission received for form %q:\n\n%s", formTitle, Transcript(fields, data))
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}
