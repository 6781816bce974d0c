package v1

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"
)

// Register wires every v1 route: repositories over the shared pool, usecases
// on top, handlers grouped under /auth, /users, /matches, /sessions and
// /messages. Everything except /auth sits behind the JWT middleware.
func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	exchangeRepo := repository.NewPostgresExchangeRepository(db)
	feedbackRepo := repository.NewPostgresFeedbackRepository(db)
	messageRepo := repository.NewPostgresMessageRepository(db)

	var matchCache usecase.MatchCache
	if redis != nil {
		matchCache = redis
	}
	matchUC := usecase.NewMatchUsecase(userRepo, matchCache, logger)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc, matchUC)
	directoryUC := usecase.NewDirectoryUsecase(userRepo, feedbackRepo, matchUC)
	exchangeUC := usecase.NewExchangeUsecase(exchangeRepo, userRepo)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, exchangeRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, userRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(directoryUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	exchangeHandler := handler.NewExchangeHandler(exchangeUC)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUC)
	messageHandler := handler.NewMessageHandler(messageUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	usersGroup := protected.Group("/users")
	userHandler.RegisterRoutes(usersGroup)

	matchesGroup := protected.Group("/matches")
	matchHandler.RegisterRoutes(matchesGroup)

	sessionsGroup := protected.Group("/sessions")
	exchangeHandler.RegisterRoutes(sessionsGroup)
	feedbackHandler.RegisterRoutes(sessionsGroup)

	messagesGroup := protected.Group("/messages")
	messageHandler.RegisterRoutes(messagesGroup)
}
