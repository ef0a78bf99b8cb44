// Package bucket manages the bucket lifecycle on the storage backend.
//
// Every operation validates the bucket name before the backend is contacted.
// Creation is idempotent and deletion is two-phase: the bucket is emptied
// with a batch removal, then removed. The phases are not atomic.
//
// # HTTP Endpoints
//
//   - GET /api/buckets : Lists bucket names.
//   - POST /api/buckets : Creates a bucket ({"name": "..."}).
//   - GET /api/buckets/:bucketName/exists : Reports whether a bucket exists.
//   - DELETE /api/buckets/:bucketName : Empties and deletes a bucket (204).
package bucket
