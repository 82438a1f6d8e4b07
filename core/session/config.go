package session

import "time"

// Config holds session lifecycle configuration. The env tags allow loading
// through core/config; functional options override individual values in
// code.
type Config struct {
	// TTL is the idle timeout: a session untouched for longer is expired.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// TouchInterval throttles activity-timestamp writes on hot read paths.
	// Zero records every access.
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL" envDefault:"0"`

	// ReapInterval is the period of the background expiry sweep.
	ReapInterval time.Duration `env:"SESSION_REAP_INTERVAL" envDefault:"5m"`

	// MaxPerOwner caps concurrently active sessions per owner. Zero or
	// negative disables the cap. Ownerless (system) sessions are never
	// capped.
	MaxPerOwner int `env:"SESSION_MAX_PER_OWNER" envDefault:"10"`
}

// DefaultConfig returns the default lifecycle configuration.
func DefaultConfig() Config {
	return Config{
		TTL:           30 * time.Minute,
		TouchInterval: 0,
		ReapInterval:  5 * time.Minute,
		MaxPerOwner:   10,
	}
}

// Option is a functional option for adjusting a Config.
type Option func(*Config)

// WithTTL sets the session idle timeout.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.TTL = ttl
		}
	}
}

// WithTouchInterval sets the minimum time between activity-timestamp
// updates. Zero disables throttling.
func WithTouchInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval >= 0 {
			c.TouchInterval = interval
		}
	}
}

// WithReapInterval sets the background sweep period.
func WithReapInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval > 0 {
			c.ReapInterval = interval
		}
	}
}

// WithMaxPerOwner sets the per-owner cap on active sessions. Zero or
// negative disables the cap.
func WithMaxPerOwner(max int) Option {
	return func(c *Config) {
		c.MaxPerOwner = max
	}
}
