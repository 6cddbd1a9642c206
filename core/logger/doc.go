// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for development (console) and
// production (json) output and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID stored by the rayid middleware from
// a Fiber context and attaches it to the log entry, so every line written
// while serving a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server running", zap.Int("port", 3001))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
