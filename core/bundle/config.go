package bundle

// Config holds configuration for the front-end bundle stored in object storage.
type Config struct {
	// Prefix is the object key prefix the bundle lives under.
	Prefix string `mapstructure:"prefix" default:"bundle"`
}
