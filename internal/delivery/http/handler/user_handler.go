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

type UserHandler struct {
	uc usecase.DirectoryUsecase
}

type updateProfileRequest struct {
	DisplayName   string `json:"display_name"`
	Location      string `json:"location"`
	Bio           string `json:"bio"`
	SkillsOffered string `json:"skills_offered"`
	SkillsWanted  string `json:"skills_wanted"`
}

func NewUserHandler(uc usecase.DirectoryUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateProfile)
	r.Put("/me/skills", h.UpdateSkills)
	r.Post("/me/deactivate", h.Deactivate)
	r.Get("/search", h.Search)
	r.Get("/:id", h.PublicProfile)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapDirectoryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		DisplayName:   req.DisplayName,
		Location:      req.Location,
		Bio:           req.Bio,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
	})
	if err != nil {
		return mapDirectoryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

// UpdateSkills accepts only the two skill lists; other profile fields are
// left untouched.
func (h *UserHandler) UpdateSkills(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req struct {
		SkillsOffered string `json:"skills_offered"`
		SkillsWanted  string `json:"skills_wanted"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.UpdateSkills(c.Context(), userID, req.SkillsOffered, req.SkillsWanted)
	if err != nil {
		return mapDirectoryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Deactivate(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.Deactivate(c.Context(), userID); err != nil {
		return mapDirectoryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *UserHandler) Search(c fiber.Ctx) error {
	users, err := h.uc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return mapDirectoryError(err)
	}

	results := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		results = append(results, dto.NewPublicUserResponse(u))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, results)
}

func (h *UserHandler) PublicProfile(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	profile, err := h.uc.GetPublicProfile(c.Context(), id)
	if err != nil {
		return mapDirectoryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPublicProfileResponse(profile))
}

func mapDirectoryError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
