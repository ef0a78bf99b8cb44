package file_test

import (
	"context"
	"testing"
	"time"

	"storage-gateway/core/storage"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioImage  = "minio/minio:latest"
	minioUser   = "gateway"
	minioSecret = "gateway-secret"
)

// startMinIO runs a throwaway MinIO server for the calling test.
func startMinIO(t *testing.T) *backend {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        minioImage,
			ExposedPorts: []string{"9000/tcp"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioSecret,
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").
				WithPort("9000/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "http")
	require.NoError(t, err)

	return newBackend(t, storage.Config{
		Endpoint:       endpoint,
		AccessKey:      minioUser,
		SecretKey:      minioSecret,
		Region:         storage.DefaultRegion,
		TimeoutSeconds: 10,
	})
}

func TestIntegration_Storage(t *testing.T) {
	exerciseStorage(t, startMinIO(t))
}
