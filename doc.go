// Package sessionkit is the session-lifecycle and access-control core for
// multi-tenant conversational applications: it decides who may read, modify,
// or administer a session and its generated artifact, caps how many sessions
// an owner can hold, and reclaims idle sessions on a background schedule.
//
// The library implements modern Go patterns including generics for payload
// type safety, functional options for configuration, and interface-based
// design at the external boundaries (directory lookups, release hooks).
//
// # Package Organization
//
//	github.com/slidecraft/sessionkit/core/session     - Session model, in-memory repository, per-owner limiter, background reaper, orchestrating service
//	github.com/slidecraft/sessionkit/core/permission  - Permission levels, visibility, user/group grants, stateless decision engine
//	github.com/slidecraft/sessionkit/core/directory   - Group-membership lookup contract with fail-closed TTL caching
//	github.com/slidecraft/sessionkit/core/config      - Type-safe environment variable loading
//	github.com/slidecraft/sessionkit/core/logger      - slog attribute helpers with domain identifiers
//	github.com/slidecraft/sessionkit/integration/database/redis - Redis client initialization for the shared group-cache tier
//
// Everything outside this core (the agent loop producing artifacts, HTTP
// routing, artifact parsing) is an external collaborator: the service layer
// exposes in-process operations returning typed errors, and a thin API layer
// maps them to transport responses.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/slidecraft/sessionkit/core/session
//	go doc -all github.com/slidecraft/sessionkit/core/permission
package sessionkit
