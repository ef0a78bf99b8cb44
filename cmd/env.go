package cmd

import (
	"storage-gateway/core/config"
	"storage-gateway/core/logger"
	"storage-gateway/core/storage"
	"storage-gateway/feature/bucket"
	"storage-gateway/feature/file"

	"go.uber.org/zap"
)

// newStorageClient is replaced in tests.
var newStorageClient = storage.NewClient

// cliEnv bundles the services used by the one-shot commands.
type cliEnv struct {
	cfg     *config.Config
	logger  *zap.Logger
	buckets *bucket.Service
	files   *file.Service
	issuer  *file.Issuer
}

func loadEnv() (*cliEnv, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, err
	}

	client, err := newStorageClient(cfg.Storage)
	if err != nil {
		return nil, err
	}

	buckets := bucket.NewService(client, logg)
	return &cliEnv{
		cfg:     cfg,
		logger:  logg,
		buckets: buckets,
		files:   file.NewService(client, buckets, logg),
		issuer:  file.NewIssuer(client, buckets, logg),
	}, nil
}
