// Package audit records successful mutating operations of the gateway.
//
// The trail is optional: without a database, NewRecorder returns a recorder
// that discards events. Recording is best effort; a failed insert is logged
// and never fails the request that triggered it.
//
// # Actions
//
//   - bucket.create, bucket.delete
//   - file.upload, file.delete, file.presign
//
// # Usage
//
//	rec := audit.NewRecorder(db, logg)
//	rec.Record(ctx, audit.Event{Action: audit.ActionFileUpload, Bucket: "docs", Key: "a.txt"})
package audit
