package errorhandler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"storage-gateway/core/apperr"
	"storage-gateway/core/middleware/errorhandler"
	"storage-gateway/core/middleware/rayid"
	"storage-gateway/core/response"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failureBody struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Data    response.ProblemDetails `json:"data"`
}

func newApp(dev bool, log *zap.Logger, err error) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorhandler.New(errorhandler.Config{Development: dev, Logger: log}),
	})
	app.Use(rayid.New())
	app.Get("/fail", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, string, failureBody) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set(rayid.Header, "ray-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body failureBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, resp.Header.Get(fiber.HeaderContentType), body
}

func TestErrorHandler_Taxonomy(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		title  string
	}{
		{"Validation", apperr.Validation("invalid bucket name"), 400, "Bad Request"},
		{"Unauthorized", apperr.Unauthorized("missing API key"), 401, "Unauthorized"},
		{"NotFound", fmt.Errorf("stat: %w", minio.ErrorResponse{Code: "NoSuchKey"}), 404, "Not Found"},
		{"InvalidOperation", apperr.InvalidOperation("bucket name is required"), 400, "Invalid Operation"},
		{"Backend", minio.ErrorResponse{Code: "InternalError", Message: "backend exploded"}, 500, "Backend Service Exception"},
		{"Internal", errors.New("unexpected"), 500, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ctype, body := doRequest(t, newApp(false, zap.NewNop(), tt.err), "/fail")

			assert.Equal(t, tt.status, status)
			assert.Contains(t, ctype, response.ProblemContentType)
			assert.False(t, body.Success)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, errorhandler.FailureMessage, body.Message)
			assert.Equal(t, tt.title, body.Data.Title)
			assert.Equal(t, tt.status, body.Data.Status)
			assert.Equal(t, "/fail", body.Data.Instance)
			assert.Equal(t, "ray-1", body.Data.Extensions[response.ExtensionTraceID])
			assert.NotContains(t, body.Data.Extensions, response.ExtensionStackTrace)
			assert.Equal(t, apperr.ClassificationFor(apperr.Classify(tt.err).Kind).Detail, body.Data.Detail)
		})
	}
}

func TestErrorHandler_Development(t *testing.T) {
	err := minio.ErrorResponse{Code: "InternalError", Message: "backend exploded"}
	_, _, body := doRequest(t, newApp(true, zap.NewNop(), err), "/fail")

	assert.Equal(t, "backend exploded", body.Data.Detail)
	assert.NotEmpty(t, body.Data.Extensions[response.ExtensionStackTrace])
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	status, _, body := doRequest(t, newApp(false, zap.NewNop(), nil), "/missing")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Not Found", body.Data.Title)
}

func TestErrorHandler_Logging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	doRequest(t, newApp(false, log, errors.New("boom")), "/fail")
	doRequest(t, newApp(false, log, apperr.Validation("bad")), "/fail")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "ray-1", entries[0].ContextMap()["ray_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "validation", entries[1].ContextMap()["kind"])
}
