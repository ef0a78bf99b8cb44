// Package config loads the gateway configuration.
//
// Sources, lowest precedence first: `default` struct tags, an optional
// config.yaml, then environment variables. A .env file in the same
// directory is loaded into the environment before anything is read.
// Nested keys map to upper-case env names joined by '_', so
// storage.access_key is read from STORAGE_ACCESS_KEY.
//
// Sections: Server (SERVER_*), Storage (STORAGE_*), Log (LOG_*) and the
// optional audit Database (DATABASE_*). Validate fails fast on storage
// settings the backend client cannot start without.
package config
