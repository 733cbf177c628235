package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sitetive/forms-backend/internal/dto"
	"github.com/sitetive/forms-backend/internal/services"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Create accepts a public submission: an arbitrary JSON object keyed by
// field id, exactly as the renderer posts it.
func (h *SubmissionHandler) Create(c *fiber.Ctx) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	sub, err := h.submissionService.Submit(c.UserContext(), id, data)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *SubmissionHandler) ListByForm(c *fiber.Ctx) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	subs, err := h.submissionService.ListByForm(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(subs)
}

// AttachFile records the reserved external-file reference on a submission.
func (h *SubmissionHandler) AttachFile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid submission id")
	}

	var req dto.AttachFileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.DriveFileID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "driveFileId is required")
	}

	sub, err := h.submissionService.AttachDriveFile(c.UserContext(), uint(id), req.DriveFileID)
	if err != nil {
		return err
	}
	return c.JSON(sub)
}
