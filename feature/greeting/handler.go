package greeting

import (
	"fmt"
	"net/url"

	"fullstack-starter/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for greetings.
type Handler struct {
	logger *zap.Logger
	name   func(c *fiber.Ctx) (string, error)
}

// NewHandler creates a new HTTP handler.
func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger, name: nameParam}
}

// nameParam returns the decoded name segment. The router hands over the raw
// path, so "user%66ail" must reach SayHello as "userfail".
func nameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", fmt.Errorf("invalid name parameter: %w", err)
	}
	return name, nil
}

// HandleSayHello greets the caller.
// @Summary Say Hello
// @Description Greets the given name. The name "userfail" simulates a failure.
// @Tags greeting
// @Produce json
// @Param name path string true "Name to greet"
// @Success 250 {object} greeting.Response "Greeting"
// @Failure 400 {object} greeting.Response "Error"
// @Router /api/say-hello/{name} [get]
func (h *Handler) HandleSayHello(c *fiber.Ctx) (err error) {
	l := logger.WithRayID(h.logger, c)

	defer func() {
		if r := recover(); r != nil {
			l.Error("Greeting failed unexpectedly", zap.Error(fmt.Errorf("%v", r)))
			err = send(c, Failed())
		}
	}()

	name, err := h.name(c)
	if err != nil {
		l.Error("Greeting failed", zap.Error(err))
		return send(c, Failed())
	}

	name = utils.CopyString(name)
	msg, err := SayHello(name)
	if err != nil {
		l.Error("Greeting failed", zap.Error(err))
		return send(c, Failed())
	}

	l.Info(`API: "GET /api/say-hello/:name" called`, zap.String("name", name))
	return send(c, Succeeded(msg))
}

func send(c *fiber.Ctx, o Outcome) error {
	return c.Status(o.Status).JSON(o.Body)
}
