package app

import (
	"context"
	"fmt"
	"strings"

	"career-guide/internal/config"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/delivery/http/routes"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

// bodyLimit leaves room for multipart framing around a maximum-size document.
const bodyLimit = usecase.MaxDocumentSize + 1<<20

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: bodyLimit,
	})

	registerGlobalMiddleware(f, c)
	routes.NewRegistry(c.Health, c.WS, c.Handlers, c.AuthMw.Middleware()).Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the HTTP app and starts the websocket
// hub. The returned cleanup stops the hub and releases connections.
func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return bootstrap(ctx, c)
}

func bootstrap(ctx context.Context, c *Container) (*App, func() error, error) {
	hubCtx, stopHub := context.WithCancel(ctx)
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: c.Config.App.CORSOrigins,
		AllowHeaders: []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization},
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions},
	}))
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
