package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"talent-screen/internal/config"
	"talent-screen/internal/delivery/http/middleware"
	"talent-screen/internal/delivery/http/routes"
	v1 "talent-screen/internal/delivery/http/routes/v1"
	"talent-screen/internal/repository"
	ucauth "talent-screen/internal/usecase/auth"
)

const sessionPurgeInterval = time.Hour

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, container)

	registry := routes.NewRegistry(v1.Deps{
		Cfg:     cfg,
		DB:      container.DB,
		Cache:   container.Cache,
		Storage: container.Storage,
		Hub:     container.Hub,
		Logger:  container.Logger,
	})
	registry.Register(f)

	go container.Hub.Run()

	authSvc := ucauth.NewService(
		repository.NewPostgresUserRepository(container.DB),
		repository.NewPostgresSessionRepository(container.DB),
		cfg.Auth.SessionTTL,
	)
	go authSvc.PurgeLoop(context.Background(), sessionPurgeInterval, container.Logger)

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
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
