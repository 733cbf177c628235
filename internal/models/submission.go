package models

import "gorm.io/datatypes"

// FormSubmission is one end-user response to a form. Data maps field ids to
// submitted values (strings, plus booleans for checkboxes). FormID is kept
// as a plain column, not a foreign key: submissions outlive form deletion.
//
// DriveFileID references an externally uploaded copy of the response and is
// only ever set through the attachment endpoint.
type FormSubmission struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	FormID      uint              `gorm:"index;not null" json:"formId"`
	Data        datatypes.JSONMap `gorm:"type:jsonb;not null" json:"data"`
	DriveFileID *string           `gorm:"size:255" json:"driveFileId"`
	SubmittedAt string            `gorm:"size:64" json:"submittedAt"`
}
