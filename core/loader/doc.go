// Package loader provides the controller registry.
//
// Controllers describe their routes as plain data: a route prefix and an
// ordered table of (method, path, handler) entries built by the controller's
// constructor. The Manager collects controllers and binds them to a Fiber
// router with a single data-driven loop.
//
// # Controller Interface
//
//	type Controller interface {
//	    Name() string
//	    Prefix() string
//	    Routes() []Route
//	}
//
// # Discovery
//
// Controllers reach the Manager in one of two ways:
//   - Register(): an explicit list assembled by the startup code.
//   - Scan(): every export of a Namespace is constructed and checked against
//     the Controller contract. Exports that are not controllers abort startup
//     with ErrNotController instead of being bound blindly.
//
// # Validation
//
// Before anything is bound the Manager validates the complete route table:
// methods must be known, paths non-empty, handlers non-nil and no
// method + path pair may be declared twice. The table is independent
// of registration order, so no controller can shadow another.
package loader
