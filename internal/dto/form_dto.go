package dto

import "github.com/sitetive/forms-backend/internal/models"

type CreateFormRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Fields      []models.FormField `json:"fields"`
	CreatedAt   string             `json:"createdAt"`
}

// UpdateFormRequest carries a partial replace: nil members keep the stored
// value, present members overwrite it (the builder always sends the full
// field list).
type UpdateFormRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Fields      *[]models.FormField `json:"fields"`
	CreatedAt   *string             `json:"createdAt"`
}

type AttachFileRequest struct {
	DriveFileID string `json:"driveFileId"`
}
