package repository

import (
	"context"

	"github.com/sitetive/forms-backend/internal/models"
	"gorm.io/gorm"
)

type formRepo struct {
	db *gorm.DB
}

func NewForms(db *gorm.DB) Forms {
	return &formRepo{db: db}
}

func (r *formRepo) List(ctx context.Context) ([]models.Form, error) {
	var forms []models.Form
	err := r.db.WithContext(ctx).Order("id").Find(&forms).Error
	return forms, err
}

func (r *formRepo) ByID(ctx context.Context, id uint) (*models.Form, error) {
	var form models.Form
	if err := r.db.WithContext(ctx).First(&form, id).Error; err != nil {
		return nil, translate(err)
	}
	return &form, nil
}

func (r *formRepo) Create(ctx context.Context, form *models.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *formRepo) Update(ctx context.Context, form *models.Form) error {
	result := r.db.WithContext(ctx).Model(&models.Form{}).
		Where("id = ?", form.ID).
		Select("title", "description", "fields", "created_at").
		Updates(form)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *formRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Form{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
