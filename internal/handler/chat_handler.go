package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "travelai/internal/errors"
)

// notImplemented is the shared response for placeholder endpoints whose
// business logic has not been built yet.
func notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, apierrors.ErrorResponse{Error: "not implemented"})
}

// ChatHandler serves the conversational recommendation endpoints.
// The chat pipeline is not built yet: history reads return empty
// collections and mutations report not implemented.
type ChatHandler struct{}

// NewChatHandler creates a new chat handler.
func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

// ChatMessage mirrors the message shape the frontend renders.
type ChatMessage struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
	Time   string `json:"time"`
}

// ChatMessageRequest represents an outgoing user message.
type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// History godoc
// @Summary Get chat history
// @Tags chat
// @Produce json
// @Success 200 {array} ChatMessage
// @Router /chat/history [get]
func (h *ChatHandler) History(c echo.Context) error {
	return c.JSON(http.StatusOK, []ChatMessage{})
}

// SendMessage godoc
// @Summary Send a chat message
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatMessageRequest true "Message"
// @Failure 501 {object} errors.ErrorResponse
// @Router /chat/message [post]
func (h *ChatHandler) SendMessage(c echo.Context) error {
	return notImplemented(c)
}

// ClearHistory godoc
// @Summary Clear chat history
// @Tags chat
// @Produce json
// @Failure 501 {object} errors.ErrorResponse
// @Router /chat/history [delete]
func (h *ChatHandler) ClearHistory(c echo.Context) error {
	return notImplemented(c)
}
