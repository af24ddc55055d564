package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmadblivin/studybuddy/api/http/presenter"
	"github.com/ahmadblivin/studybuddy/pkg/account"
)

type AuthHandler struct {
	useCase account.AccountUseCase
}

func NewAuthHandler(useCase account.AccountUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type loginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login resolves or creates the user for the given email and issues a token.
// @Summary Login (creates the user on first login)
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and name are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Name)
	if err != nil {
		var validation account.ErrValidation
		if errors.As(err, &validation) {
			return presenter.Error(c, http.StatusBadRequest, validation.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}
