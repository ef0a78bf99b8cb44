// Package file manages objects inside buckets and issues presigned upload URLs.
//
// Uploads create the target bucket when it is missing. Downloads stat the
// object first so a missing key fails before any bytes are streamed.
// Deleting a missing key succeeds, listing a missing bucket yields nothing.
//
// Presigned URLs accept a single PUT. The content type is part of the
// signature, so the uploader must send the exact Content-Type it was
// issued for. Validity defaults to 10 minutes and is capped at 7 days.
//
// # HTTP Endpoints
//
//   - GET /api/buckets/:bucketName/files : Lists keys (404 for a missing bucket).
//   - GET /api/buckets/:bucketName/files/presigned-upload-url : Issues a presigned PUT URL.
//   - POST /api/buckets/:bucketName/files : Uploads the multipart field "file".
//   - GET /api/buckets/:bucketName/files/*key : Streams an object.
//   - DELETE /api/buckets/:bucketName/files/*key : Deletes an object (204).
package file
