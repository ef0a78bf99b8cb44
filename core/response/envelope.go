package response

import "net/http"

// DefaultSuccessMessage is used when a success response carries no message.
const DefaultSuccessMessage = "operation succeeded"

// Envelope is the uniform response wrapper. Data is omitted when it holds
// its zero value.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// Ok creates a success envelope carrying data.
func Ok[T any](data T, message string) Envelope[T] {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return Envelope[T]{Success: true, Code: http.StatusOK, Message: message, Data: data}
}

// OkWithoutData creates a success envelope without a payload.
func OkWithoutData(message string) Envelope[any] {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return Envelope[any]{Success: true, Code: http.StatusOK, Message: message}
}

// Fail creates a failure envelope carrying data, usually a *ProblemDetails.
func Fail[T any](data T, message string, code int) Envelope[T] {
	return Envelope[T]{Success: false, Code: failureCode(code), Message: message, Data: data}
}

// FailWithoutData creates a failure envelope without a payload.
func FailWithoutData(message string, code int) Envelope[any] {
	return Envelope[any]{Success: false, Code: failureCode(code), Message: message}
}

func failureCode(code int) int {
	if code == 0 {
		return http.StatusBadRequest
	}
	return code
}
