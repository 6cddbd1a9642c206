package server_test

import (
	"testing"

	"fullstack-starter/core/server"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want server.Mode
	}{
		{"Production", "production", server.ModeProd},
		{"Empty", "", server.ModeDev},
		{"Development", "development", server.ModeDev},
		{"Uppercase", "PRODUCTION", server.ModeDev},
		{"Padded", " production", server.ModeDev},
		{"Test", "test", server.ModeDev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.ParseMode(tt.env))
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	base := server.Config{Port: 3001, ProdPort: 8081, BuildDir: " web/build ", DevServerURL: "http://localhost:3000"}

	dev := base.Resolve()
	assert.Equal(t, server.ServerConfig{
		Port:         3001,
		Mode:         server.ModeDev,
		BuildDir:     "web/build",
		DevServerURL: "http://localhost:3000",
	}, dev)

	base.Env = "production"
	prod := base.Resolve()
	assert.Equal(t, server.ModeProd, prod.Mode)
	assert.Equal(t, 8081, prod.Port)
}
