// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// The package loads a .env file once on first use (missing files are fine)
// and parses environment variables into struct fields via caarlos0/env tags:
//
//	import "github.com/slidecraft/sessionkit/core/config"
//
//	type SessionConfig struct {
//		TTL         time.Duration `env:"SESSION_TTL" envDefault:"30m"`
//		MaxPerOwner int           `env:"SESSION_MAX_PER_OWNER" envDefault:"10"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is parsed only once per process lifetime; later
// Load calls for the same type return the cached value. Different types are
// cached independently, so each component can declare and load its own
// config struct without coordinating with the rest of the application.
package config
