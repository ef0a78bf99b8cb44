package storage_test

import (
	"testing"

	"storage-gateway/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "http", client.EndpointURL().Scheme)
		assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.example.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "eu-west-1",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https", client.EndpointURL().Scheme)
	})

	t.Run("InstanceProfileWithoutKeys", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:           "http://10.0.0.5:9000",
			UseInstanceProfile: true,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("MissingFields", func(t *testing.T) {
		tests := []struct {
			name string
			cfg  storage.Config
			want error
		}{
			{"Endpoint", storage.Config{AccessKey: "a", SecretKey: "s"}, storage.ErrMissingEndpoint},
			{"AccessKey", storage.Config{Endpoint: "localhost:9000", SecretKey: "s"}, storage.ErrMissingAccessKey},
			{"SecretKey", storage.Config{Endpoint: "localhost:9000", AccessKey: "a"}, storage.ErrMissingSecretKey},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				client, err := storage.NewClient(tt.cfg)
				assert.ErrorIs(t, err, tt.want)
				assert.Nil(t, client)
			})
		}
	})

	t.Run("EndpointWithPath", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "http://localhost:9000/minio", AccessKey: "a", SecretKey: "s"}
		_, err := storage.NewClient(cfg)
		assert.Error(t, err)
	})
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		cfg        storage.Config
		wantHost   string
		wantSecure bool
		wantErr    bool
	}{
		{"HTTP", storage.Config{Endpoint: "http://127.0.0.1:9000"}, "127.0.0.1:9000", false, false},
		{"HTTPS", storage.Config{Endpoint: "https://s3.example.com/"}, "s3.example.com", true, false},
		{"BareInsecure", storage.Config{Endpoint: "minio:9000"}, "minio:9000", false, false},
		{"BareSecure", storage.Config{Endpoint: "minio:9000", UseSSL: true}, "minio:9000", true, false},
		{"SchemeOverridesUseSSL", storage.Config{Endpoint: "http://minio:9000", UseSSL: true}, "minio:9000", false, false},
		{"InstanceProfileDefault", storage.Config{UseInstanceProfile: true, Region: "eu-central-1"}, "s3.eu-central-1.amazonaws.com", true, false},
		{"InstanceProfileNoRegion", storage.Config{UseInstanceProfile: true}, "s3.us-east-1.amazonaws.com", true, false},
		{"Empty", storage.Config{}, "", false, true},
		{"BadScheme", storage.Config{Endpoint: "ftp://minio:21"}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure, err := storage.ParseEndpoint(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}
