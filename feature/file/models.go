package file

import (
	"io"
	"time"
)

// DefaultContentType is used when an upload or presign names no content type.
const DefaultContentType = "application/octet-stream"

// UploadResult describes a successful upload.
type UploadResult struct {
	Success      bool   `json:"success"`
	URL          string `json:"url,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Download is an open object stream plus its metadata. The caller closes Body.
type Download struct {
	Body         io.ReadCloser
	ContentType  string
	Size         int64
	ETag         string
	LastModified time.Time
}

// PresignedURLRequest describes a presigned upload.
type PresignedURLRequest struct {
	// Key is the object key the URL uploads to. Required.
	Key string `json:"key"`
	// ContentType is bound into the signature; clients must send the same value.
	ContentType string `json:"contentType,omitempty"`
	// BucketName is the target bucket. Required.
	BucketName string `json:"bucketName,omitempty"`
	// DurationMinutes is the validity; values <= 0 select the default.
	DurationMinutes float64 `json:"durationMinutes,omitempty"`
}

// FileList lists object keys.
type FileList struct {
	Files []string `json:"files"`
}

// PresignedURL wraps an issued URL.
type PresignedURL struct {
	URL string `json:"url"`
}
