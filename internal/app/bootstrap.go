package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-map/internal/config"
	"talent-map/internal/delivery/http/middleware"
	"talent-map/internal/delivery/http/routes"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	routes.Register(f, cfg, c.DB)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
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
