package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"skillswap/internal/database/migration"
	"skillswap/internal/database/seeder"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/delivery/http/routes"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container, runs migrations (and, in development, the
// seeders), then assembles the HTTP app. The returned cleanup closes the
// container.
func Bootstrap(c *Container) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := runMigrations(ctx, c); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	if c.Config.App.IsDevelopment() {
		runner := seeder.Runner{Seeders: seeder.Defaults()}
		if err := runner.Run(ctx, c.DB); err != nil {
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
	}

	app := New(c)
	return app, c.Close, nil
}

func runMigrations(ctx context.Context, c *Container) error {
	return migration.Runner{Dir: c.Config.Database.MigrationsDir}.Run(ctx, c.DB.SQLDB())
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(c.DB, c.Cache)
	routes.NewRegistry(c.Config, c.DB, c.Cache, health, c.Logger).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
