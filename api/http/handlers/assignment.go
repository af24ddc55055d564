package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ahmadblivin/studybuddy/api/http/presenter"
	"github.com/ahmadblivin/studybuddy/pkg/assignment"
)

type AssignmentHandler struct {
	uc assignment.UseCase
}

func NewAssignmentHandler(uc assignment.UseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// @Summary Список заданий текущего пользователя
// @Tags    Задания
// @Produce json
// @Security BearerAuth
// @Success 200 {array} assignment.Assignment
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	items, err := h.uc.List(c.Context(), email)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list assignments")
	}
	if items == nil {
		items = []assignment.Assignment{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type createAssignmentRequest struct {
	Title string `json:"title"`
	Due   string `json:"due"`
}

// @Summary Создать задание
// @Tags    Задания
// @Accept  json
// @Produce json
// @Param   input body createAssignmentRequest true "Данные задания"
// @Security BearerAuth
// @Success 200 {object} assignment.Assignment
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	var req createAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	a, err := h.uc.Create(c.Context(), email, req.Title, req.Due)
	if err != nil {
		var validation assignment.ErrValidation
		if errors.As(err, &validation) {
			return presenter.Error(c, http.StatusBadRequest, validation.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create assignment")
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// @Summary Удалить задание
// @Tags    Задания
// @Produce json
// @Param   id path string true "ID задания (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	if err := h.uc.Delete(c.Context(), email, id); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete assignment")
	}
	// Клиенту не различить "удалено" и "нечего удалять": контракт един.
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "assignment deleted"})
}
