package feature

import (
	"fullstack-starter/core/loader"
	"fullstack-starter/feature/greeting"

	"go.uber.org/zap"
)

// Controllers returns the namespace of all controllers.
func Controllers(logger *zap.Logger) *loader.Namespace {
	return loader.NewNamespace("feature").
		Export("Greeting", func() any { return greeting.NewController(logger) })
}
