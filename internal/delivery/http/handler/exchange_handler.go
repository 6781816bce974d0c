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

type ExchangeHandler struct {
	uc usecase.ExchangeUsecase
}

type proposeRequest struct {
	RecipientID  uuid.UUID `json:"recipient_id"`
	OfferedSkill string    `json:"offered_skill"`
	WantedSkill  string    `json:"wanted_skill"`
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

func NewExchangeHandler(uc usecase.ExchangeUsecase) *ExchangeHandler {
	return &ExchangeHandler{uc: uc}
}

func (h *ExchangeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Propose)
	r.Get("/", h.List)
	r.Post("/:id/respond", h.Respond)
	r.Post("/:id/confirm", h.Confirm)
	r.Post("/:id/cancel", h.Cancel)
}

func (h *ExchangeHandler) Propose(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req proposeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	session, err := h.uc.Propose(c.Context(), userID, usecase.ProposeInput{
		RecipientID:  req.RecipientID,
		OfferedSkill: req.OfferedSkill,
		WantedSkill:  req.WantedSkill,
	})
	if err != nil {
		return mapExchangeError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewSessionResponse(session))
}

func (h *ExchangeHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sessions, err := h.uc.SessionsFor(c.Context(), userID)
	if err != nil {
		return mapExchangeError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponses(sessions))
}

func (h *ExchangeHandler) Respond(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid session id", nil, err)
	}

	var req respondRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	session, err := h.uc.Respond(c.Context(), sessionID, userID, req.Accept)
	if err != nil {
		return mapExchangeError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(session))
}

func (h *ExchangeHandler) Confirm(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid session id", nil, err)
	}

	session, err := h.uc.Confirm(c.Context(), sessionID, userID)
	if err != nil {
		return mapExchangeError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(session))
}

func (h *ExchangeHandler) Cancel(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid session id", nil, err)
	}

	session, err := h.uc.Cancel(c.Context(), sessionID, userID)
	if err != nil {
		return mapExchangeError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(session))
}

func mapExchangeError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Session not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrNotParticipant):
		return middleware.NewAppError(fiber.StatusForbidden, "Not a participant of this session", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the other side may do this", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Session is not in a state that allows this", nil, err)
	case errors.Is(err, usecase.ErrSelfExchange):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot open an exchange with yourself", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
