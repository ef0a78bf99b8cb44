package server

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// NewApp creates the Fiber application for cfg. errorHandler turns returned
// errors into responses.
func NewApp(cfg Config, errorHandler fiber.ErrorHandler) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "storage-gateway",
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimit(),
		ErrorHandler:          errorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})
}
