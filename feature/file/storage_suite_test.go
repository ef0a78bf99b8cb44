package file_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"storage-gateway/core/apperr"
	"storage-gateway/core/storage"
	"storage-gateway/feature/bucket"
	"storage-gateway/feature/file"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type backend struct {
	client  storage.Client
	buckets *bucket.Service
	files   *file.Service
	issuer  *file.Issuer
}

func newBackend(t *testing.T, cfg storage.Config) *backend {
	t.Helper()
	client, err := storage.NewClient(cfg)
	require.NoError(t, err)

	logger := zap.NewNop()
	buckets := bucket.NewService(client, logger)
	return &backend{
		client:  client,
		buckets: buckets,
		files:   file.NewService(client, buckets, logger),
		issuer:  file.NewIssuer(client, buckets, logger),
	}
}

func randomBucket() string {
	return "bucket-" + uuid.NewString()
}

// exerciseStorage runs the round-trip properties of the gateway services
// against a live S3 endpoint.
func exerciseStorage(t *testing.T, b *backend) {
	ctx := context.Background()

	t.Run("UploadThenGet", func(t *testing.T) {
		name := randomBucket()

		result, err := b.files.UploadFile(ctx, name, "hello.txt", strings.NewReader("hello"), 5, "text/plain")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, strings.HasSuffix(result.URL, "/"+name+"/hello.txt"), result.URL)

		exists, err := b.buckets.BucketExists(ctx, name)
		require.NoError(t, err)
		assert.True(t, exists)

		dl, err := b.files.GetFile(ctx, name, "hello.txt")
		require.NoError(t, err)
		defer dl.Body.Close()

		raw, err := io.ReadAll(dl.Body)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(raw))
		assert.Equal(t, "text/plain", dl.ContentType)
		assert.Equal(t, int64(5), dl.Size)
	})

	t.Run("MissingKeyIsNotFound", func(t *testing.T) {
		name := randomBucket()
		_, err := b.buckets.CreateBucket(ctx, name)
		require.NoError(t, err)

		_, err = b.files.GetFile(ctx, name, "absent.txt")
		assert.Equal(t, apperr.KindNotFound, apperr.Classify(err).Kind)

		ok, err := b.files.DeleteFile(ctx, name, "absent.txt")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("PresignedPutRoundTrip", func(t *testing.T) {
		name := randomBucket()

		u, err := b.issuer.Issue(ctx, file.PresignedURLRequest{
			Key:         "signed.txt",
			BucketName:  name,
			ContentType: "text/plain",
		})
		require.NoError(t, err)

		req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, strings.NewReader("signed body"))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "text/plain")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		keys, err := b.files.ListFiles(ctx, name)
		require.NoError(t, err)
		assert.Contains(t, keys, "signed.txt")

		dl, err := b.files.GetFile(ctx, name, "signed.txt")
		require.NoError(t, err)
		defer dl.Body.Close()
		raw, err := io.ReadAll(dl.Body)
		require.NoError(t, err)
		assert.Equal(t, "signed body", string(raw))
	})

	t.Run("CreateIsIdempotent", func(t *testing.T) {
		name := randomBucket()
		for i := 0; i < 2; i++ {
			ok, err := b.buckets.CreateBucket(ctx, name)
			require.NoError(t, err)
			assert.True(t, ok)
		}

		names, err := b.buckets.ListBuckets(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name)
	})

	t.Run("DeleteNonEmptyBucket", func(t *testing.T) {
		name := randomBucket()
		const n = 25
		for i := 0; i < n; i++ {
			key := fmt.Sprintf("dir-%d/object-%d.txt", i%3, i)
			_, err := b.files.UploadFile(ctx, name, key, strings.NewReader("x"), 1, "")
			require.NoError(t, err)
		}

		keys, err := b.files.ListFiles(ctx, name)
		require.NoError(t, err)
		assert.Len(t, keys, n)

		ok, err := b.buckets.DeleteBucket(ctx, name)
		require.NoError(t, err)
		assert.True(t, ok)

		exists, err := b.buckets.BucketExists(ctx, name)
		require.NoError(t, err)
		assert.False(t, exists)

		keys, err = b.files.ListFiles(ctx, name)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("DeleteMissingBucket", func(t *testing.T) {
		_, err := b.buckets.DeleteBucket(ctx, randomBucket())
		assert.Equal(t, apperr.KindNotFound, apperr.Classify(err).Kind)
	})
}
