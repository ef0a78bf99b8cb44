package apperr

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
)

// Classification is the stable, client-facing description of a failure.
type Classification struct {
	Kind   Kind
	Status int
	Title  string
	// Detail is a generic description that never leaks the underlying message.
	Detail string
}

var classifications = map[Kind]Classification{
	KindValidation: {
		Kind:   KindValidation,
		Status: http.StatusBadRequest,
		Title:  "Bad Request",
		Detail: "The request is invalid",
	},
	KindUnauthorized: {
		Kind:   KindUnauthorized,
		Status: http.StatusUnauthorized,
		Title:  "Unauthorized",
		Detail: "Access is denied",
	},
	KindNotFound: {
		Kind:   KindNotFound,
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "The requested resource was not found",
	},
	KindInvalidOperation: {
		Kind:   KindInvalidOperation,
		Status: http.StatusBadRequest,
		Title:  "Invalid Operation",
		Detail: "The operation is invalid",
	},
	KindBackend: {
		Kind:   KindBackend,
		Status: http.StatusInternalServerError,
		Title:  "Backend Service Exception",
		Detail: "The storage backend failed to process the request",
	},
	KindInternal: {
		Kind:   KindInternal,
		Status: http.StatusInternalServerError,
		Title:  "Internal Server Error",
		Detail: "An internal server error occurred",
	},
}

// S3 error codes that mean the addressed resource is absent.
var notFoundCodes = map[string]bool{
	"NoSuchBucket":  true,
	"NoSuchKey":     true,
	"NoSuchUpload":  true,
	"NoSuchVersion": true,
}

// ClassificationFor returns the classification of a kind.
func ClassificationFor(kind Kind) Classification {
	if c, ok := classifications[kind]; ok {
		return c
	}
	return classifications[KindInternal]
}

// Classify maps any error to its Classification. An explicit *Error kind
// wins over everything found deeper in the chain.
func Classify(err error) Classification {
	return ClassificationFor(classifyKind(err))
}

func classifyKind(err error) Kind {
	if err == nil {
		return KindInternal
	}

	if kind, ok := kindOf(err); ok {
		return kind
	}

	var s3Err minio.ErrorResponse
	if errors.As(err, &s3Err) && (s3Err.Code != "" || s3Err.StatusCode != 0) {
		if notFoundCodes[s3Err.Code] || s3Err.StatusCode == http.StatusNotFound {
			return KindNotFound
		}
		return KindBackend
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch {
		case fiberErr.Code == fiber.StatusUnauthorized:
			return KindUnauthorized
		case fiberErr.Code == fiber.StatusNotFound:
			return KindNotFound
		case fiberErr.Code >= 400 && fiberErr.Code < 500:
			return KindValidation
		default:
			return KindInternal
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindBackend
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindBackend
	}

	return KindInternal
}
