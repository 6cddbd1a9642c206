package loader

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Manager holds the registry of discovered controllers.
type Manager struct {
	controllers []Controller
	logger      *zap.Logger
}

// NewManager creates an empty registry.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Register appends controllers in the given order.
func (m *Manager) Register(controllers ...Controller) *Manager {
	for _, c := range controllers {
		m.controllers = append(m.controllers, c)
		m.logger.Debug("Registered controller",
			zap.String("name", c.Name()),
			zap.String("prefix", normalizePrefix(c.Prefix())))
	}
	return m
}

// Scan constructs every export of ns and registers it.
// Each constructed value must implement Controller and carry a valid route
// table; otherwise nothing from ns is registered and an error is returned.
func (m *Manager) Scan(ns *Namespace) error {
	found := make([]Controller, 0, len(ns.symbols))
	for _, symbol := range ns.Symbols() {
		f, _ := ns.Lookup(symbol)
		if f == nil {
			return fmt.Errorf("%s.%s: nil factory: %w", ns.Name(), symbol, ErrNotController)
		}

		c, err := construct(f)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", ns.Name(), symbol, err)
		}
		found = append(found, c)
	}

	m.Register(found...)
	return nil
}

// Controllers returns the discovered controllers in registration order.
func (m *Manager) Controllers() []Controller {
	out := make([]Controller, len(m.controllers))
	copy(out, m.controllers)
	return out
}

// Table returns the validated route table sorted by path, then method.
// The result does not depend on registration order.
func (m *Manager) Table() ([]Binding, error) {
	seen := make(map[string]string)
	var table []Binding

	for _, c := range m.controllers {
		bindings, err := resolve(c)
		if err != nil {
			return nil, err
		}
		for _, b := range bindings {
			key := b.Method + " " + pattern(b.Path)
			if owner, ok := seen[key]; ok {
				return nil, fmt.Errorf("%s declared by %s and %s: %w", key, owner, c.Name(), ErrDuplicateRoute)
			}
			seen[key] = c.Name()
			table = append(table, b)
		}
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].Path != table[j].Path {
			return table[i].Path < table[j].Path
		}
		return table[i].Method < table[j].Method
	})
	return table, nil
}

// LoadAll binds every controller's routes under its prefix.
// The route table is validated first; nothing is bound if it is invalid.
func (m *Manager) LoadAll(router fiber.Router) error {
	if _, err := m.Table(); err != nil {
		return err
	}

	for _, c := range m.controllers {
		prefix := normalizePrefix(c.Prefix())
		group := router.Group(prefix)
		for _, r := range c.Routes() {
			group.Add(r.Method, normalizePath(r.Path), r.Handler)
		}
		m.logger.Info("Loaded controller",
			zap.String("name", c.Name()),
			zap.String("prefix", prefix),
			zap.Int("routes", len(c.Routes())))
	}
	return nil
}

// construct invokes f and validates the result. A panic while building or
// describing the controller, e.g. from a typed nil pointer, is reported as
// ErrNotController.
func construct(f Factory) (c Controller, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("%v: %w", r, ErrNotController)
		}
	}()

	c, ok := f().(Controller)
	if !ok {
		return nil, ErrNotController
	}
	if _, err := resolve(c); err != nil {
		return nil, err
	}
	return c, nil
}

func resolve(c Controller) ([]Binding, error) {
	prefix := normalizePrefix(c.Prefix())
	routes := c.Routes()
	bindings := make([]Binding, 0, len(routes))

	for i, r := range routes {
		if _, ok := methods[r.Method]; !ok {
			return nil, fmt.Errorf("%s route %d: unsupported method %q: %w", c.Name(), i, r.Method, ErrInvalidRoute)
		}
		if r.Path == "" {
			return nil, fmt.Errorf("%s route %d: empty path: %w", c.Name(), i, ErrInvalidRoute)
		}
		if r.Handler == nil {
			return nil, fmt.Errorf("%s route %d: nil handler: %w", c.Name(), i, ErrInvalidRoute)
		}
		bindings = append(bindings, Binding{
			Controller: c.Name(),
			Method:     r.Method,
			Path:       joinPath(prefix, normalizePath(r.Path)),
		})
	}
	return bindings, nil
}
