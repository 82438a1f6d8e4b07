// Package redis provides Redis client initialization and health checking
// for the shared caching tiers in this module.
//
// It wraps the go-redis client with URL validation, retry logic, and a
// connectivity check, so callers get a verified working client or a typed
// error:
//
//	cfg := redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  5 * time.Second,
//		ConnectTimeout: 30 * time.Second,
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// The Config struct carries env tags, so it loads through core/config
// (REDIS_URL, REDIS_RETRY_ATTEMPTS, REDIS_RETRY_INTERVAL,
// REDIS_CONNECT_TIMEOUT).
//
// The primary consumer in this module is the shared group-membership cache
// tier (core/directory.GroupCache), which uses Redis to deduplicate
// directory lookups across replicas. Session state itself is never stored
// in Redis.
//
// # Health Checking
//
// Healthcheck returns a probe function for readiness endpoints:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// errors.Is(err, redis.ErrHealthcheckFailed)
//	}
//
// # Error Handling
//
// Sentinel errors wrap the underlying go-redis errors and are stable for
// errors.Is checks: ErrEmptyConnectionURL, ErrFailedToParseRedisConnString,
// ErrRedisNotReady, ErrHealthcheckFailed.
package redis
