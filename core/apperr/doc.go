// Package apperr defines the error taxonomy of the storage gateway.
//
// Every failure handled by the gateway falls into one Kind. Business code
// creates typed errors for the failures it detects itself (validation,
// missing required fields) and lets backend failures propagate wrapped with
// %w. Classify is the single place that turns an arbitrary error into a
// stable (status, title, detail) triple.
//
// # Kinds
//
//   - Validation: malformed input, 400 Bad Request
//   - Unauthorized: missing or invalid credentials, 401 Unauthorized
//   - NotFound: missing bucket or key, 404 Not Found
//   - InvalidOperation: precondition violated by the caller, 400 Invalid Operation
//   - Backend: S3 service or transport failure, 500 Backend Service Exception
//   - Internal: anything unclassified, 500 Internal Server Error
//
// # Usage
//
//	if key == "" {
//	    return apperr.Validation("key is required")
//	}
//
//	c := apperr.Classify(err)
//	fmt.Println(c.Status, c.Title)
package apperr
