package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sitetive/forms-backend/internal/dto"
	"github.com/sitetive/forms-backend/internal/services"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

func (h *FormHandler) List(c *fiber.Ctx) error {
	forms, err := h.formService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(forms)
}

func (h *FormHandler) Get(c *fiber.Ctx) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	form, err := h.formService.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(form)
}

func (h *FormHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	form, err := h.formService.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

func (h *FormHandler) Update(c *fiber.Ctx) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	form, err := h.formService.Update(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(form)
}

func (h *FormHandler) Delete(c *fiber.Ctx) error {
	id, err := formID(c)
	if err != nil {
		return err
	}

	if err := h.formService.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func formID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid form id")
	}
	return uint(id), nil
}
