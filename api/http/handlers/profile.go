package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmadblivin/studybuddy/api/http/presenter"
	"github.com/ahmadblivin/studybuddy/pkg/account"
)

type ProfileHandler struct {
	useCase account.AccountUseCase
}

func NewProfileHandler(useCase account.AccountUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// Get returns the authenticated user's own record.
// @Summary Get own profile
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} account.User
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	user, err := h.useCase.Profile(c.Context(), email)
	if err != nil {
		// A gate-approved identity without a record is a server-side problem,
		// the token is only ever issued for an existing-or-just-created user.
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// Update replaces the caller's display name.
// @Summary Update own profile name
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body updateProfileRequest true "profile payload"
// @Security BearerAuth
// @Success 200 {object} account.User
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	user, err := h.useCase.UpdateName(c.Context(), email, req.Name)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, user)
}
