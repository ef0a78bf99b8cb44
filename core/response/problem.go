package response

import (
	"runtime/debug"
	"time"

	"storage-gateway/core/apperr"
)

const (
	// ProblemContentType is the media type of a problem response.
	ProblemContentType = "application/problem+json"
	// ProblemType is the default problem type URI.
	ProblemType = "about:blank"

	// ExtensionTraceID is the extension key of the correlation id.
	ExtensionTraceID = "traceId"
	// ExtensionStackTrace is the extension key of the development stack trace.
	ExtensionStackTrace = "stackTrace"
)

// ProblemDetails is an RFC 7807 error payload.
type ProblemDetails struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ProblemOptions controls how NewProblem renders an error.
type ProblemOptions struct {
	// Instance is the request path the failure belongs to.
	Instance string
	// TraceID correlates the response with server logs.
	TraceID string
	// Development exposes raw error text and a stack trace. The trace is
	// the one recorded where the apperr error was built; errors without one
	// fall back to the stack of the goroutine rendering the problem.
	Development bool
}

// NewProblem classifies err and renders it as a ProblemDetails.
func NewProblem(err error, opts ProblemOptions) *ProblemDetails {
	c := apperr.Classify(err)

	detail := c.Detail
	if opts.Development && err != nil {
		detail = err.Error()
	}

	ext := map[string]any{ExtensionTraceID: opts.TraceID}
	if opts.Development {
		trace, ok := apperr.StackTrace(err)
		if !ok {
			trace = string(debug.Stack())
		}
		ext[ExtensionStackTrace] = trace
	}

	return &ProblemDetails{
		Type:       ProblemType,
		Title:      c.Title,
		Status:     c.Status,
		Detail:     detail,
		Instance:   opts.Instance,
		Extensions: ext,
		Timestamp:  time.Now().UTC(),
	}
}
