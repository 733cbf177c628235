package repository

import (
	"context"

	"github.com/sitetive/forms-backend/internal/models"
	"gorm.io/gorm"
)

type submissionRepo struct {
	db *gorm.DB
}

func NewSubmissions(db *gorm.DB) Submissions {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) ByID(ctx context.Context, id uint) (*models.FormSubmission, error) {
	var sub models.FormSubmission
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

func (r *submissionRepo) ListByForm(ctx context.Context, formID uint) ([]models.FormSubmission, error) {
	var subs []models.FormSubmission
	err := r.db.WithContext(ctx).Where("form_id = ?", formID).Order("id").Find(&subs).Error
	return subs, err
}

func (r *submissionRepo) Create(ctx context.Context, sub *models.FormSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *submissionRepo) SetDriveFileID(ctx context.Context, id uint, fileID string) error {
	result := r.db.WithContext(ctx).Model(&models.FormSubmission{}).
		Where("id = ?", id).
		Update("drive_file_id", fileID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
