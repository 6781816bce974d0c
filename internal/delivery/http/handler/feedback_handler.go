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

type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

type submitFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/feedback", h.Submit)
}

func (h *FeedbackHandler) Submit(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid session id", nil, err)
	}

	var req submitFeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	fb, err := h.uc.Submit(c.Context(), userID, usecase.SubmitFeedbackInput{
		SessionID: sessionID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return mapFeedbackError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewFeedbackResponse(fb))
}

func mapFeedbackError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Session not found", nil, err)
	case errors.Is(err, usecase.ErrNotParticipant):
		return middleware.NewAppError(fiber.StatusForbidden, "Not a participant of this session", nil, err)
	case errors.Is(err, usecase.ErrSessionNotCompleted):
		return middleware.NewAppError(fiber.StatusConflict, "Session is not completed", nil, err)
	case errors.Is(err, usecase.ErrDuplicateFeedback):
		return middleware.NewAppError(fiber.StatusConflict, "Feedback already submitted", nil, err)
	case errors.Is(err, usecase.ErrRatingOutOfRange):
		return middleware.NewAppError(fiber.StatusBadRequest, "Rating must be between 1 and 5", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
