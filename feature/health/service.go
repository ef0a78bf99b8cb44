package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storage-gateway/core/database"
	"storage-gateway/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ProbeTimeout is the deadline shared by all probes of one check.
const ProbeTimeout = 5 * time.Second

const (
	StatusUp   = "up"
	StatusDown = "down"
)

// Check is the outcome of one dependency probe.
type Check struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// Report aggregates all probes.
type Report struct {
	Status    string           `json:"status"`
	Checks    map[string]Check `json:"checks"`
	CheckedAt time.Time        `json:"checkedAt"`
}

// Healthy reports whether every probe succeeded.
func (r Report) Healthy() bool {
	return r.Status == StatusUp
}

// Service probes the gateway's dependencies.
type Service struct {
	client  storage.Client
	db      *gorm.DB
	logger  *zap.Logger
	timeout time.Duration
}

// NewService creates a health service. db may be nil.
func NewService(client storage.Client, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{client: client, db: db, logger: logger, timeout: ProbeTimeout}
}

// Check probes the storage backend and, when configured, the database.
// Probes run concurrently under one deadline. A failing probe does not
// cancel the others, so every check reports its own outcome.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{Status: StatusUp, Checks: map[string]Check{}}

	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	run := func(name string, fn func(context.Context) error) {
		g.Go(func() error {
			c, err := probe(pctx, fn)
			mu.Lock()
			report.Checks[name] = c
			mu.Unlock()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}

	run("storage", func(ctx context.Context) error {
		_, err := s.client.ListBuckets(ctx)
		return err
	})
	if s.db != nil {
		run("database", func(ctx context.Context) error {
			return database.Ping(ctx, s.db, s.timeout)
		})
	}

	if err := g.Wait(); err != nil {
		report.Status = StatusDown
		s.logger.Warn("Health probe failed", zap.Error(err))
	}
	report.CheckedAt = time.Now().UTC()
	return report
}

func probe(ctx context.Context, fn func(context.Context) error) (Check, error) {
	start := time.Now()
	err := fn(ctx)
	c := Check{Status: StatusUp, LatencyMs: time.Since(start).Milliseconds()}
	if err != nil {
		c.Status = StatusDown
		c.Error = err.Error()
	}
	return c, err
}
