package models

import "gorm.io/datatypes"

// Field type enum. Anything else is rejected on write.
const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldNumber   = "number"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldCheckbox = "checkbox"
)

var FieldTypes = []string{
	FieldText, FieldEmail, FieldNumber, FieldTextarea, FieldSelect, FieldCheckbox,
}

// FormField is one input definition within a form. The ID is a
// client-generated token (the builder uses crypto.randomUUID) and must be
// unique within the form; field order is significant and preserved.
type FormField struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// Form is an administrator-authored schema of labeled input fields.
// Fields live in a single JSONB column so the ordered list round-trips
// exactly as the builder saved it.
type Form struct {
	ID          uint                           `gorm:"primaryKey" json:"id"`
	Title       string                         `gorm:"size:255;not null" json:"title"`
	Description string                         `gorm:"type:text" json:"description"`
	Fields      datatypes.JSONSlice[FormField] `gorm:"type:jsonb;not null" json:"fields"`
	CreatedAt   string                         `gorm:"size:64" json:"createdAt"`
}
