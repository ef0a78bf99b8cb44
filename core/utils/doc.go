// Package utils provides small request helpers shared by the HTTP features:
// unescaped path parameters, typed query parameters and download headers.
// Parse failures are reported as apperr validation errors.
package utils
