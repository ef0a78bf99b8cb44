// Package activity serves the audit trail over HTTP at GET /api/activity.
// The feature is disabled unless an audit database is configured.
package activity
