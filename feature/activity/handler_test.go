package activity

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"storage-gateway/core/audit"
	"storage-gateway/core/database"
	"storage-gateway/core/middleware/errorhandler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, audit.Recorder) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	rec := audit.NewRecorder(db, zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: errorhandler.New(errorhandler.Config{Logger: zap.NewNop()}),
	})
	require.NoError(t, NewFeature(rec, true).Load(app.Group("/api")))
	return app, rec
}

func TestHandleRecent(t *testing.T) {
	app, rec := setupTestApp(t)
	base := time.Now().UTC().Add(-time.Hour)
	ctx := context.Background()
	rec.Record(ctx, audit.Event{Action: audit.ActionBucketCreate, Bucket: "one", CreatedAt: base})
	rec.Record(ctx, audit.Event{Action: audit.ActionFileUpload, Bucket: "one", Key: "a.txt", CreatedAt: base.Add(time.Minute)})
	rec.Record(ctx, audit.Event{Action: audit.ActionFileDelete, Bucket: "one", Key: "a.txt", CreatedAt: base.Add(2 * time.Minute)})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/activity?limit=2", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data EventList `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Events, 2)
	assert.Equal(t, audit.ActionFileDelete, body.Data.Events[0].Action)
	assert.Equal(t, audit.ActionFileUpload, body.Data.Events[1].Action)
}

func TestHandleRecent_InvalidLimit(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, q := range []string{"?limit=0", "?limit=501", "?limit=many"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/activity"+q, nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, q)
	}
}

func TestLoader(t *testing.T) {
	feature := NewFeature(audit.NewRecorder(nil, zap.NewNop()), false)
	assert.Equal(t, "activity", feature.Name())
	assert.False(t, feature.IsEnabled())
}
