package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitetive/forms-backend/internal/mail"
	"github.com/sitetive/forms-backend/internal/models"
	"github.com/sitetive/forms-backend/internal/repository"
	"gorm.io/datatypes"
)

type SubmissionService struct {
	forms       repository.Forms
	submissions repository.Submissions
	sender      mail.Sender
	mailTimeout time.Duration
}

func NewSubmissionService(forms repository.Forms, submissions repository.Submissions, sender mail.Sender, mailTimeout time.Duration) *SubmissionService {
	return &SubmissionService{
		forms:       forms,
		submissions: submissions,
		sender:      sender,
		mailTimeout: mailTimeout,
	}
}

// Submit stores a response to the given form and notifies by email. The
// submission is durable once stored: a failed send is logged and the
// submission is still returned as success. There is no retry queue; the
// persisted system log is the operator's signal to follow up.
func (s *SubmissionService) Submit(ctx context.Context, formID uint, data map[string]interface{}) (*models.FormSubmission, error) {
	form, err := s.forms.ByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	sub := &models.FormSubmission{
		FormID:      formID,
		Data:        datatypes.JSONMap(data),
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.notify(ctx, form, data)
	return sub, nil
}

func (s *SubmissionService) notify(ctx context.Context, form *models.Form, data map[string]interface{}) {
	body := mail.SubmissionBody(form.Title, form.Fields, data)

	sendCtx, cancel := context.WithTimeout(ctx, s.mailTimeout)
	defer cancel()

	if err := s.sender.Send(sendCtx, form.Title, body); err != nil {
		slog.Error("submission notification failed",
			"action", "submission_notify",
			"form_id", form.ID,
			"error", err)
	}
}

// ListByForm returns all stored responses for an existing form.
func (s *SubmissionService) ListByForm(ctx context.Context, formID uint) ([]models.FormSubmission, error) {
	if _, err := s.forms.ByID(ctx, formID); err != nil {
		return nil, err
	}
	return s.submissions.ListByForm(ctx, formID)
}

// AttachDriveFile records the external file reference on a submission. This
// is the only mutation submissions support.
func (s *SubmissionService) AttachDriveFile(ctx context.Context, id uint, fileID string) (*models.FormSubmission, error) {
	if err := s.submissions.SetDriveFileID(ctx, id, fileID); err != nil {
		return nil, err
	}
	return s.submissions.ByID(ctx, id)
}
