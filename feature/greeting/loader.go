package greeting

import (
	"fullstack-starter/core/loader"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Prefix is the route prefix of the greeting controller.
const Prefix = "/api/say-hello"

// Controller implements the loader.Controller interface.
type Controller struct {
	handler *Handler
	routes  []loader.Route
}

// NewController creates the greeting controller and its route table.
func NewController(logger *zap.Logger) *Controller {
	h := NewHandler(logger)
	return &Controller{
		handler: h,
		routes: []loader.Route{
			{Method: fiber.MethodGet, Path: "/:name", Handler: h.HandleSayHello},
		},
	}
}

// Name returns the name of the controller.
func (c *Controller) Name() string {
	return "greeting"
}

// Prefix returns the route prefix.
func (c *Controller) Prefix() string {
	return Prefix
}

// Routes returns the route table.
func (c *Controller) Routes() []loader.Route {
	return c.routes
}
