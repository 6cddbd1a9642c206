package server

import "strings"

// Config holds configuration for the HTTP server as read from the environment.
type Config struct {
	// Port is the port used in development mode.
	Port int `mapstructure:"port" default:"3001"`
	// ProdPort replaces Port when running in production mode.
	ProdPort int `mapstructure:"prod_port" default:"8081"`
	// Env selects the serving mode. Only "production" selects production mode.
	Env string `mapstructure:"env" default:""`
	// BuildDir is the directory holding the built front-end bundle.
	BuildDir string `mapstructure:"build_dir" default:"web/build"`
	// DevServerURL is where the front-end dev server runs in development mode.
	DevServerURL string `mapstructure:"dev_server_url" default:"http://localhost:3000"`
}

// Mode is the serving mode of the application server.
type Mode string

const (
	ModeDev  Mode = "development"
	ModeProd Mode = "production"
)

// ParseMode maps the environment signal to a Mode.
// Anything other than the exact string "production" is development.
func ParseMode(env string) Mode {
	if env == string(ModeProd) {
		return ModeProd
	}
	return ModeDev
}

// ServerConfig is the resolved, immutable configuration of an App.
type ServerConfig struct {
	Port         int
	Mode         Mode
	BuildDir     string
	DevServerURL string
}

// Resolve decides the serving mode and the matching port.
func (c Config) Resolve() ServerConfig {
	sc := ServerConfig{
		Port:         c.Port,
		Mode:         ParseMode(c.Env),
		BuildDir:     strings.TrimSpace(c.BuildDir),
		DevServerURL: c.DevServerURL,
	}
	if sc.Mode == ModeProd {
		sc.Port = c.ProdPort
	}
	return sc
}
