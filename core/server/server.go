package server

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"sync"

	"fullstack-starter/core/loader"
	"fullstack-starter/core/logger"
	"fullstack-starter/core/middleware/bodyparser"
	"fullstack-starter/core/middleware/rayid"
	"fullstack-starter/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "fullstack-starter/docs/swagger"
)

// State is the lifecycle state of an App.
type State string

const (
	StateConstructed State = "constructed"
	StateListening   State = "listening"
)

// ErrorMessage is the body returned for every error reaching Fiber.
const ErrorMessage = "error"

// IndexFile is the entry point of the front-end bundle.
const IndexFile = "index.html"

// DevMessage is the notice served for unmatched paths in development mode.
const DevMessage = "Server is running in dev mode. Start the front-end dev server at %s to develop the front-end. Back-end is running on port: %d"

// App is the application server.
type App struct {
	cfg    ServerConfig
	app    *fiber.App
	logger *zap.Logger

	mu    sync.Mutex
	state State
	addr  net.Addr
	done  chan error
}

// New builds the application server: middleware, controller routes and the
// routes of the configured mode. It fails only if the controllers cannot be
// bound.
func New(cfg ServerConfig, logg *zap.Logger, controllers *loader.Manager) (*App, error) {
	if logg == nil {
		logg = zap.NewNop()
	}

	a := &App{
		cfg:    cfg,
		logger: logg.With(zap.String("mode", string(cfg.Mode))),
		state:  StateConstructed,
		done:   make(chan error, 1),
	}

	a.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          a.handleError,
	})

	a.app.Use(recover.New())
	a.app.Use(rayid.New())
	a.app.Use(requestlog.New(a.logger))
	a.app.Use(bodyparser.New())

	if controllers != nil {
		if err := controllers.LoadAll(a.app); err != nil {
			return nil, fmt.Errorf("failed to load controllers: %w", err)
		}
	}

	switch cfg.Mode {
	case ModeProd:
		a.installProdRoutes()
	default:
		a.installDevRoutes()
	}

	return a, nil
}

func (a *App) installDevRoutes() {
	a.logger.Info("Starting server in development mode")
	a.app.Get("/swagger/*", swagger.HandlerDefault)

	msg := fmt.Sprintf(DevMessage, a.cfg.DevServerURL, a.cfg.Port)
	a.app.Get("*", func(c *fiber.Ctx) error {
		return c.SendString(msg)
	})
}

func (a *App) installProdRoutes() {
	a.logger.Info("Starting server in production mode", zap.String("build_dir", a.cfg.BuildDir))
	a.app.Static("/", a.cfg.BuildDir)

	index := filepath.Join(a.cfg.BuildDir, IndexFile)
	a.app.Get("*", func(c *fiber.Ctx) error {
		if err := c.SendFile(index); err != nil {
			logger.WithRayID(a.logger, c).Error("Failed to serve front-end entry point",
				zap.String("file", index), zap.Error(err))
			return fiber.ErrInternalServerError
		}
		return nil
	})
}

func (a *App) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"response": ErrorMessage})
}

// Start binds the configured port and serves in the background.
// A bind failure is returned as is. Calling Start again tries to bind again.
func (a *App) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", a.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to bind port %d: %w", a.cfg.Port, err)
	}

	a.mu.Lock()
	a.state = StateListening
	a.addr = ln.Addr()
	a.mu.Unlock()

	a.logger.Info("Server running", zap.String("addr", ln.Addr().String()))

	go func() {
		err := a.app.Listener(ln)
		select {
		case a.done <- err:
		default:
		}
	}()
	return nil
}

// Wait blocks until the listener stops serving.
func (a *App) Wait() error {
	return <-a.done
}

// Handler exposes the underlying Fiber app, mainly for in-process tests.
func (a *App) Handler() *fiber.App {
	return a.app
}

// Mode returns the serving mode decided at construction.
func (a *App) Mode() Mode {
	return a.cfg.Mode
}

// Port returns the configured port.
func (a *App) Port() int {
	return a.cfg.Port
}

// State returns the lifecycle state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Addr returns the address bound by Start, or nil before Start.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addr
}
