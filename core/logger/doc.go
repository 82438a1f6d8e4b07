// Package logger provides slog attribute helpers shared by the session and
// directory packages.
//
// Helpers follow the empty-Attr pattern: passing a nil error, empty string,
// or nil UUID yields an attribute slog silently drops, so call sites never
// need nil checks:
//
//	log.Warn("reclaim hook failed",
//		logger.SessionID(sess.ID),
//		logger.OwnerID(sess.OwnerID),
//		logger.Error(err),
//	)
//
// Domain identifiers (SessionID, PrincipalID, OwnerID, Visibility) keep log
// keys consistent across components, which matters once logs from the
// reaper, the limiter, and the service are correlated per session.
package logger
