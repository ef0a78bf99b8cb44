package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"storage-gateway/core/apperr"
	"storage-gateway/core/storage"
	"storage-gateway/core/validation"
	"storage-gateway/feature/bucket"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrKeyRequired is returned when an object key is empty.
var ErrKeyRequired = errors.New("file key is required")

// Service manages objects inside buckets.
type Service struct {
	client  storage.Client
	buckets *bucket.Service
	logger  *zap.Logger
}

// NewService creates a new file service.
func NewService(client storage.Client, buckets *bucket.Service, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		buckets: buckets,
		logger:  logger,
	}
}

func checkTarget(bucketName, key string) error {
	if err := validation.ValidateBucketName(bucketName); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return apperr.Wrap(apperr.KindValidation, "invalid object key", ErrKeyRequired)
	}
	return nil
}

// UploadFile stores body under key, creating the bucket when it is missing.
// size may be -1 when unknown.
func (s *Service) UploadFile(ctx context.Context, bucketName, key string, body io.Reader, size int64, contentType string) (UploadResult, error) {
	if err := checkTarget(bucketName, key); err != nil {
		return UploadResult{}, err
	}

	if _, err := s.buckets.CreateBucket(ctx, bucketName); err != nil {
		return UploadResult{}, err
	}

	if contentType == "" {
		contentType = DefaultContentType
	}

	info, err := s.client.PutObject(ctx, bucketName, key, body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		s.logger.Error("Failed to upload file",
			zap.String("bucket", bucketName),
			zap.String("key", key),
			zap.Error(err))
		return UploadResult{}, fmt.Errorf("failed to upload %q to bucket %q: %w", key, bucketName, err)
	}

	s.logger.Info("File uploaded",
		zap.String("bucket", bucketName),
		zap.String("key", key),
		zap.Int64("size", info.Size))

	return UploadResult{Success: true, URL: s.objectURL(bucketName, key)}, nil
}

func (s *Service) objectURL(bucketName, key string) string {
	base := ""
	if u := s.client.EndpointURL(); u != nil {
		base = strings.TrimRight(u.String(), "/")
	}
	return base + "/" + bucketName + "/" + key
}

// GetFile opens the object for reading. A missing bucket or key surfaces
// the backend's NotFound.
func (s *Service) GetFile(ctx context.Context, bucketName, key string) (*Download, error) {
	if err := checkTarget(bucketName, key); err != nil {
		return nil, err
	}

	// GetObject is lazy; Stat first so absence fails here.
	info, err := s.client.StatObject(ctx, bucketName, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q in bucket %q: %w", key, bucketName, err)
	}

	body, err := s.client.GetObject(ctx, bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %q from bucket %q: %w", key, bucketName, err)
	}

	return &Download{
		Body:         body,
		ContentType:  info.ContentType,
		Size:         info.Size,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// DeleteFile removes the object. Removing a missing key succeeds.
func (s *Service) DeleteFile(ctx context.Context, bucketName, key string) (bool, error) {
	if err := checkTarget(bucketName, key); err != nil {
		return false, err
	}

	if err := s.client.RemoveObject(ctx, bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return true, nil
		}
		return false, fmt.Errorf("failed to delete %q from bucket %q: %w", key, bucketName, err)
	}

	s.logger.Info("File deleted", zap.String("bucket", bucketName), zap.String("key", key))
	return true, nil
}

// ListFiles returns every key in the bucket. A missing bucket yields an
// empty list.
func (s *Service) ListFiles(ctx context.Context, bucketName string) ([]string, error) {
	keys, _, err := s.listFiles(ctx, bucketName)
	return keys, err
}

// listFiles also reports whether the bucket exists, so callers that need to
// tell a missing bucket from an empty one do not probe it twice. A bucket
// removed while listing counts as missing.
func (s *Service) listFiles(ctx context.Context, bucketName string) ([]string, bool, error) {
	exists, err := s.buckets.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, false, err
	}
	keys := []string{}
	if !exists {
		return keys, false, nil
	}

	for obj := range s.client.ListObjects(ctx, bucketName, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			if apperr.Classify(obj.Err).Kind == apperr.KindNotFound {
				return []string{}, false, nil
			}
			return nil, true, fmt.Errorf("failed to list files of bucket %q: %w", bucketName, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, true, nil
}
