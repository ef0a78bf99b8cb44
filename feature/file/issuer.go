package file

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storage-gateway/core/apperr"
	"storage-gateway/core/storage"
	"storage-gateway/core/validation"
	"storage-gateway/feature/bucket"

	"go.uber.org/zap"
)

const (
	// DefaultPresignDuration applies when a request names no duration.
	DefaultPresignDuration = 10 * time.Minute
	// MaxPresignDuration is the longest validity S3 signatures allow.
	MaxPresignDuration = 7 * 24 * time.Hour
)

// Issuer issues presigned upload URLs.
type Issuer struct {
	client  storage.Client
	buckets *bucket.Service
	logger  *zap.Logger
}

// NewIssuer creates a new presigned URL issuer.
func NewIssuer(client storage.Client, buckets *bucket.Service, logger *zap.Logger) *Issuer {
	return &Issuer{client: client, buckets: buckets, logger: logger}
}

// Issue returns a URL accepting a single PUT of req.Key with req.ContentType.
// The target bucket is created when missing.
func (i *Issuer) Issue(ctx context.Context, req PresignedURLRequest) (string, error) {
	if strings.TrimSpace(req.Key) == "" {
		return "", apperr.Wrap(apperr.KindValidation, "invalid object key", ErrKeyRequired)
	}
	if strings.TrimSpace(req.BucketName) == "" {
		return "", apperr.InvalidOperation("bucket name is required")
	}
	if err := validation.ValidateBucketName(req.BucketName); err != nil {
		return "", err
	}

	expiry, err := presignDuration(req.DurationMinutes)
	if err != nil {
		return "", err
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	if _, err := i.buckets.CreateBucket(ctx, req.BucketName); err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Content-Type", contentType)

	u, err := i.client.PresignHeader(ctx, http.MethodPut, req.BucketName, req.Key, expiry, nil, headers)
	if err != nil {
		return "", fmt.Errorf("failed to presign %q in bucket %q: %w", req.Key, req.BucketName, err)
	}

	i.logger.Info("Presigned upload URL issued",
		zap.String("bucket", req.BucketName),
		zap.String("key", req.Key),
		zap.Duration("expiry", expiry))
	return u.String(), nil
}

func presignDuration(minutes float64) (time.Duration, error) {
	if minutes <= 0 {
		return DefaultPresignDuration, nil
	}
	if minutes > MaxPresignDuration.Minutes() {
		return 0, apperr.Validationf("duration must not exceed %d minutes", int(MaxPresignDuration.Minutes()))
	}
	d := time.Duration(minutes * float64(time.Minute))
	if d < time.Second {
		return 0, apperr.Validation("duration must be at least one second")
	}
	return d, nil
}
