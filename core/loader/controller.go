package loader

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Route is a single entry of a controller's route table.
type Route struct {
	// Method is the HTTP method (GET, POST, ...).
	Method string
	// Path is relative to the controller prefix, e.g. "/:name".
	Path string
	// Handler serves the route.
	Handler fiber.Handler
}

// Controller is implemented by every request controller.
type Controller interface {
	// Name identifies the controller in logs and errors.
	Name() string
	// Prefix is the path every route of the controller is mounted under.
	Prefix() string
	// Routes returns the controller's route table.
	Routes() []Route
}

// Binding is a route resolved against its controller's prefix.
type Binding struct {
	Controller string
	Method     string
	Path       string
}

var methods = map[string]struct{}{
	fiber.MethodGet:     {},
	fiber.MethodHead:    {},
	fiber.MethodPost:    {},
	fiber.MethodPut:     {},
	fiber.MethodPatch:   {},
	fiber.MethodDelete:  {},
	fiber.MethodOptions: {},
}

// normalizePrefix turns "api/say-hello/" into "/api/say-hello".
// The root prefix normalizes to the empty string.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func joinPath(prefix, path string) string {
	if path == "/" && prefix != "" {
		return prefix
	}
	return prefix + path
}

// pattern reduces a route path to the shape the router matches on:
// parameter names are dropped, so "/users/:id" and "/users/:x" compare equal.
// An optional marker is kept.
func pattern(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		segments[i] = ":"
		if strings.HasSuffix(seg, "?") {
			segments[i] = ":?"
		}
	}
	return strings.Join(segments, "/")
}
