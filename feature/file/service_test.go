package file

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"storage-gateway/core/apperr"
	"storage-gateway/core/storage/mocks"
	"storage-gateway/core/validation"
	"storage-gateway/feature/bucket"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService() (*Service, *mocks.Client) {
	mockClient := new(mocks.Client)
	buckets := bucket.NewService(mockClient, zap.NewNop())
	return NewService(mockClient, buckets, zap.NewNop()), mockClient
}

func endpoint(raw string) *url.URL {
	u, _ := url.Parse(raw)
	return u
}

func TestService_UploadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesBucketAndUploads", func(t *testing.T) {
		svc, mockClient := setupService()
		mockClient.On("BucketExists", mock.Anything, "uploads").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "uploads", mock.Anything).Return(nil)
		mockClient.On("PutObject", mock.Anything, "uploads", "docs/a.txt", mock.Anything, int64(5),
			minio.PutObjectOptions{ContentType: "text/plain"}).Return(minio.UploadInfo{Size: 5}, nil)
		mockClient.On("EndpointURL").Return(endpoint("http://localhost:9000"))

		result, err := svc.UploadFile(ctx, "uploads", "docs/a.txt", strings.NewReader("hello"), 5, "text/plain")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "http://localhost:9000/uploads/docs/a.txt", result.URL)
		assert.Empty(t, result.ErrorMessage)
		mockClient.AssertExpectations(t)
	})

	t.Run("DefaultContentType", func(t *testing.T) {
		svc, mockClient := setupService()
		mockClient.On("BucketExists", mock.Anything, "uploads").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "uploads", "blob", mock.Anything, int64(3),
			minio.PutObjectOptions{ContentType: DefaultContentType}).Return(minio.UploadInfo{Size: 3}, nil)
		mockClient.On("EndpointURL").Return(endpoint("https://s3.example.com/"))

		result, err := svc.UploadFile(ctx, "uploads", "blob", strings.NewReader("abc"), 3, "")
		require.NoError(t, err)
		assert.Equal(t, "https://s3.example.com/uploads/blob", result.URL)
	})

	t.Run("BackendFailurePropagates", func(t *testing.T) {
		svc, mockClient := setupService()
		mockClient.On("BucketExists", mock.Anything, "uploads").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "uploads", "k", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, minio.ErrorResponse{Code: "InternalError", StatusCode: 500})

		result, err := svc.UploadFile(ctx, "uploads", "k", strings.NewReader("x"), 1, "")
		require.Error(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, apperr.KindBackend, apperr.Classify(err).Kind)
	})

	t.Run("ValidationBeforeBackend", func(t *testing.T) {
		svc, mockClient := setupService()

		_, err := svc.UploadFile(ctx, "a", "k", strings.NewReader("x"), 1, "")
		assert.ErrorIs(t, err, validation.ErrNameLength)

		_, err = svc.UploadFile(ctx, "uploads", " ", strings.NewReader("x"), 1, "")
		assert.ErrorIs(t, err, ErrKeyRequired)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))

		mockClient.AssertNotCalled(t, "BucketExists", mock.Anything, mock.Anything)
	})
}

func TestService_GetFile(t *testing.T) {
	ctx := context.Background()
	modified := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		svc, mockClient := setupService()
		mockClient.On("StatObject", mock.Anything, "data", "a.txt", mock.Anything).
			Return(minio.ObjectInfo{Key: "a.txt", Size: 5, ContentType: "text/plain", ETag: "e1", LastModified: modified}, nil)
		mockClient.On("GetObject", mock.Anything, "data", "a.txt", mock.Anything).
			Return(io.NopCloser(strings.NewReader("hello")), nil)

		dl, err := svc.GetFile(ctx, "data", "a.txt")
		require.NoError(t, err)
		defer dl.Body.Close()

		raw, err := io.ReadAll(dl.Body)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(raw))
		assert.Equal(t, "text/plain", dl.ContentType)
		assert.Equal(t, int64(5), dl.Size)
		assert.Equal(t, "e1", dl.ETag)
		assert.Equal(t, modified, dl.LastModified)
	})

	t.Run("MissingKey", func(t *testing.T) {
		svc, mockClient := setupService()
		mockClient.On("StatObject", mock.Anything, "data", "nope", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

		_, err := svc.GetFile(ctx, "data", "nope")
		assert.Equal(t, apperr.KindNotFound, apperr.Classify(err).Kind)
		mockClient.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_DeleteFile(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := setupService()
	mockClient.On("RemoveObject", mock.Anything, "data", "a.txt", mock.Anything).Return(nil)
	mockClient.On("RemoveObject", mock.Anything, "data", "gone.txt", mock.Anything).
		Return(minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
	mockClient.On("RemoveObject", mock.Anything, "data", "locked.txt", mock.Anything).
		Return(errors.New("denied"))

	ok, err := svc.DeleteFile(ctx, "data", "a.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteFile(ctx, "data", "gone.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteFile(ctx, "data", "locked.txt")
	assert.Error(t, err)
	assert.False(t, ok)

	_, err = svc.DeleteFile(ctx, "data", "")
	assert.ErrorIs(t, err, ErrKeyRequired)
}

func TestService_ListFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("Keys", func(t *testing.T) {
		svc, mockClient := setupService()
		mockClient.On("BucketExists", mock.Anything, "data").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "data", minio.ListObjectsOptions{Recursive: true}).
			Return(mocks.ObjectsChannel("a.txt", "dir/b.txt"))

		keys, err := svc.ListFiles(ctx, "data")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "dir/b.txt"}, keys)
	})

	t.Run("MissingBucketIsEmpty", func(t *testing.T) {
		svc, mockClient := setupService()
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		keys, err := svc.ListFiles(ctx, "ghost")
		require.NoError(t, err)
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})

	t.Run("BucketVanishesMidList", func(t *testing.T) {
		svc, mockClient := setupService()
		mockClient.On("BucketExists", mock.Anything, "racy").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: 404}}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "racy", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		keys, err := svc.ListFiles(ctx, "racy")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("InvalidName", func(t *testing.T) {
		svc, _ := setupService()
		_, err := svc.ListFiles(ctx, "bad..name")
		assert.ErrorIs(t, err, validation.ErrConsecutiveDots)
	})
}
