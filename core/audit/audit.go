package audit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Action names a mutating operation.
type Action string

const (
	ActionBucketCreate Action = "bucket.create"
	ActionBucketDelete Action = "bucket.delete"
	ActionFileUpload   Action = "file.upload"
	ActionFileDelete   Action = "file.delete"
	ActionFilePresign  Action = "file.presign"
)

// Event is one audited operation.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RayID     string    `gorm:"size:64;index" json:"rayId"`
	Action    Action    `gorm:"size:32;index" json:"action"`
	Bucket    string    `gorm:"size:63;index" json:"bucket"`
	Key       string    `gorm:"size:1024" json:"key,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// TableName sets the table name of Event.
func (Event) TableName() string {
	return "audit_events"
}

// Recorder stores audit events.
type Recorder interface {
	// Record stores e. Failures are logged, not returned.
	Record(ctx context.Context, e Event)
	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// NewRecorder returns a database-backed recorder, or a no-op recorder when
// db is nil or the schema cannot be migrated.
func NewRecorder(db *gorm.DB, logger *zap.Logger) Recorder {
	if db == nil {
		return nopRecorder{}
	}
	if err := db.AutoMigrate(&Event{}); err != nil {
		logger.Warn("Audit trail disabled, migration failed", zap.Error(err))
		return nopRecorder{}
	}
	return &gormRecorder{db: db, logger: logger}
}

type gormRecorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func (r *gormRecorder) Record(ctx context.Context, e Event) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		r.logger.Warn("Failed to record audit event",
			zap.String("action", string(e.Action)),
			zap.String("bucket", e.Bucket),
			zap.String("key", e.Key),
			zap.Error(err))
	}
}

func (r *gormRecorder) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	var events []Event
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, Event) {}

func (nopRecorder) Recent(context.Context, int) ([]Event, error) {
	return nil, nil
}
