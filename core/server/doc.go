// Package server owns the HTTP listener of the application.
//
// # Modes
//
// The serving mode is decided once, when the Config is resolved into a
// ServerConfig, from the SERVER_ENV signal:
//   - development (default): unmatched GET requests receive a plain-text
//     notice pointing at the front-end dev server. No static assets are served.
//   - production: the built front-end bundle is served from BuildDir and every
//     unmatched GET request receives BuildDir/index.html, so client-side
//     routing works. Production also switches to ProdPort.
//
// # Lifecycle
//
// New installs the request pipeline (recover, RayID, request log, body
// parsing), binds the controllers of a loader.Manager and the mode routes.
// Start binds the port and serves in the background; the App moves from
// StateConstructed to StateListening and never back.
//
// # Errors
//
// Every error that reaches Fiber is answered with {"response":"error"} and
// the error's status code, so no internal detail leaks to clients.
package server
