package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"
)

type MessageHandler struct {
	uc usecase.MessageUsecase
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Inbox)
	r.Get("/:peer_id", h.Thread)
	r.Post("/:peer_id", h.Send)
}

func (h *MessageHandler) Inbox(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	messages, err := h.uc.Inbox(c.Context(), userID)
	if err != nil {
		return mapMessageError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMessageResponses(messages))
}

func (h *MessageHandler) Thread(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	peerID, err := uuid.Parse(c.Params("peer_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid peer id", nil, err)
	}

	messages, err := h.uc.ThreadBetween(c.Context(), userID, peerID)
	if err != nil {
		return mapMessageError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMessageResponses(messages))
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	peerID, err := uuid.Parse(c.Params("peer_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid peer id", nil, err)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	msg, err := h.uc.Send(c.Context(), userID, peerID, req.Body)
	if err != nil {
		return mapMessageError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewMessageResponse(msg))
}

func mapMessageError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrEmptyMessage):
		return middleware.NewAppError(fiber.StatusBadRequest, "Message body is empty", nil, err)
	case errors.Is(err, usecase.ErrSelfMessage):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot message yourself", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
