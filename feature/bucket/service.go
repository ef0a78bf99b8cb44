package bucket

import (
	"context"
	"errors"
	"fmt"

	"storage-gateway/core/storage"
	"storage-gateway/core/validation"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// codeAlreadyOwned is returned when a concurrent request created the bucket first.
const codeAlreadyOwned = "BucketAlreadyOwnedByYou"

// Service manages the bucket lifecycle on the storage backend.
type Service struct {
	client storage.Client
	logger *zap.Logger
	// creating collapses concurrent creations of one bucket.
	creating singleflight.Group
}

// NewService creates a new bucket service.
func NewService(client storage.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// CreateBucket creates the bucket unless it already exists. Both outcomes
// report true.
func (s *Service) CreateBucket(ctx context.Context, name string) (bool, error) {
	if err := validation.ValidateBucketName(name); err != nil {
		return false, err
	}

	// The shared flight must not inherit one caller's cancellation; each
	// caller stops waiting on its own context instead.
	flight := s.creating.DoChan(name, func() (any, error) {
		return nil, s.ensureBucket(context.WithoutCancel(ctx), name)
	})
	select {
	case res := <-flight:
		if res.Err != nil {
			return false, res.Err
		}
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (s *Service) ensureBucket(ctx context.Context, name string) error {
	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", name, err)
	}
	if exists {
		s.logger.Debug("Bucket already exists", zap.String("bucket", name))
		return nil
	}

	if err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{}); err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == codeAlreadyOwned {
			return nil
		}
		s.logger.Error("Failed to create bucket", zap.String("bucket", name), zap.Error(err))
		return fmt.Errorf("failed to create bucket %q: %w", name, err)
	}

	s.logger.Info("Bucket created", zap.String("bucket", name))
	return nil
}

// BucketExists reports whether the bucket exists.
func (s *Service) BucketExists(ctx context.Context, name string) (bool, error) {
	if err := validation.ValidateBucketName(name); err != nil {
		return false, err
	}

	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %q: %w", name, err)
	}
	return exists, nil
}

// DeleteBucket empties the bucket, then removes it. The two phases are not
// atomic: a failure after some objects were removed leaves them removed.
func (s *Service) DeleteBucket(ctx context.Context, name string) (bool, error) {
	if err := validation.ValidateBucketName(name); err != nil {
		return false, err
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, name, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list objects of bucket %q: %w", name, obj.Err)
		}
		keys = append(keys, obj.Key)
	}

	if len(keys) > 0 {
		objectsCh := make(chan minio.ObjectInfo, len(keys))
		for _, k := range keys {
			objectsCh <- minio.ObjectInfo{Key: k}
		}
		close(objectsCh)

		var firstErr error
		failed := 0
		for rErr := range s.client.RemoveObjects(ctx, name, objectsCh, minio.RemoveObjectsOptions{}) {
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to remove object %q: %w", rErr.ObjectName, rErr.Err)
			}
		}
		if firstErr != nil {
			s.logger.Error("Failed to empty bucket",
				zap.String("bucket", name),
				zap.Int("failed", failed),
				zap.Int("total", len(keys)),
				zap.Error(firstErr))
			return false, firstErr
		}
		s.logger.Debug("Bucket emptied", zap.String("bucket", name), zap.Int("removed", len(keys)))
	}

	if err := s.client.RemoveBucket(ctx, name); err != nil {
		return false, fmt.Errorf("failed to delete bucket %q: %w", name, err)
	}

	s.logger.Info("Bucket deleted", zap.String("bucket", name))
	return true, nil
}

// ListBuckets returns the bucket names in backend order.
func (s *Service) ListBuckets(ctx context.Context) ([]string, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	return names, nil
}
