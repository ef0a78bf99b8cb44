// Package storage is the adapter to the S3-compatible storage backend.
//
// It wraps the MinIO Go client and is the only package that talks to the
// backend. A single Client is built once from Config and shared by every
// request; the underlying connection pool is safe for concurrent use.
//
// # Addressing
//
// The backend is a self-hosted S3-compatible service reached by IP or
// hostname, so path-style bucket lookup is always used. The endpoint scheme
// selects plain HTTP or TLS, and presigned URLs follow the same scheme.
//
// # Credentials
//
// Static access/secret keys are required unless UseInstanceProfile is set,
// in which case credentials come from the host's IAM role.
//
// # Client Interface
//
// The Client interface abstracts the backend primitives, making it easy to
// mock storage interactions in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
