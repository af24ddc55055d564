package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmadblivin/studybuddy/api/http/presenter"
	"github.com/ahmadblivin/studybuddy/pkg/chat"
)

type ChatHandler struct {
	uc chat.UseCase
}

func NewChatHandler(uc chat.UseCase) *ChatHandler { return &ChatHandler{uc: uc} }

// @Summary История общего чата
// @Description Возвращает все сообщения по возрастанию отметки времени.
// @Tags        Чат
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} chat.Message
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /chat [get]
func (h *ChatHandler) List(c *fiber.Ctx) error {
	messages, err := h.uc.List(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list messages")
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	return presenter.JSON(c, http.StatusOK, messages)
}

type postMessageRequest struct {
	Text string `json:"text"`
}

// @Summary Отправить сообщение в общий чат
// @Tags    Чат
// @Accept  json
// @Produce json
// @Param   input body postMessageRequest true "Текст сообщения"
// @Security BearerAuth
// @Success 200 {object} chat.Message
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *ChatHandler) Post(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	var req postMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	m, err := h.uc.Post(c.Context(), email, req.Text)
	if err != nil {
		var validation chat.ErrValidation
		if errors.As(err, &validation) {
			return presenter.Error(c, http.StatusBadRequest, validation.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to post message")
	}
	return presenter.JSON(c, http.StatusOK, m)
}
