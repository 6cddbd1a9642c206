// Package config provides configuration management for the application.
//
// It utilizes Viper for reading environment variables, optionally seeded from
// a .env file with godotenv. There is no configuration file: every key has a
// default declared in a `default` struct tag and can be overridden with the
// matching upper-cased environment variable (server.port -> SERVER_PORT).
//
// # Configuration Structure
//
//   - Server: ports, serving mode signal (SERVER_ENV), build directory
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials and bucket for the front-end bundle
//   - Bundle: object key prefix of the bundle
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srvCfg := cfg.Server.Resolve()
package config
