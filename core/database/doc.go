// Package database handles the optional database connection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// from the application's configuration. The gateway itself stores nothing in
// the database; the connection only backs the audit trail (core/audit), so
// an empty driver disables it and a failed connection is a warning, not a
// startup error.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
