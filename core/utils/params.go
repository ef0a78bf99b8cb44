package utils

import (
	"net/url"
	"strconv"
	"strings"

	"storage-gateway/core/apperr"

	"github.com/gofiber/fiber/v2"
)

// PathParam returns the unescaped route parameter name.
func PathParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperr.Validationf("invalid path parameter %q", name)
	}
	return v, nil
}

// WildcardParam returns the unescaped "*" route segment, which may contain slashes.
func WildcardParam(c *fiber.Ctx) (string, error) {
	v, err := PathParam(c, "*")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(v, "/"), nil
}

// QueryFloat parses the query parameter name, returning def when it is absent.
func QueryFloat(c *fiber.Ctx, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.Validationf("query parameter %q must be a number", name)
	}
	return f, nil
}

// QueryInt parses the query parameter name, returning def when it is absent.
func QueryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validationf("query parameter %q must be an integer", name)
	}
	return i, nil
}

// Attachment renders a Content-Disposition value for a download named after
// the last segment of key.
func Attachment(key string) string {
	name := key
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return `attachment; filename="` + strings.ReplaceAll(name, `"`, "") + `"; filename*=UTF-8''` + url.PathEscape(name)
}
