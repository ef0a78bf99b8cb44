// Package logger builds the zap logger used across the gateway.
//
// Level selects the minimum level; debug also switches to zap's development
// preset. Format is json (default) or console.
//
// Request-scoped logs carry the ray id set by the rayid middleware:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Upload rejected", zap.String("bucket", name))
//
// The same id is returned to clients as the traceId of problem responses.
package logger
