package repository

import (
	"context"
	"errors"

	"github.com/sitetive/forms-backend/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned for any operation against a missing id. It is the
// only storage error handlers are expected to branch on; everything else is
// an internal failure.
var ErrNotFound = errors.New("record not found")

// Users holds administrative accounts.
type Users interface {
	ByID(ctx context.Context, id uint) (*models.User, error)
	ByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// Forms holds form schemas. Create assigns the id from the database
// sequence, so ids are monotonically increasing and never reused after a
// delete. Update persists the full row the caller already merged.
type Forms interface {
	List(ctx context.Context) ([]models.Form, error)
	ByID(ctx context.Context, id uint) (*models.Form, error)
	Create(ctx context.Context, form *models.Form) error
	Update(ctx context.Context, form *models.Form) error
	Delete(ctx context.Context, id uint) error
}

// Submissions holds form responses. Responses are immutable except for the
// reserved external-file reference.
type Submissions interface {
	ByID(ctx context.Context, id uint) (*models.FormSubmission, error)
	ListByForm(ctx context.Context, formID uint) ([]models.FormSubmission, error)
	Create(ctx context.Context, sub *models.FormSubmission) error
	SetDriveFileID(ctx context.Context, id uint, fileID string) error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
