package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruitment/pkg/logging"
)

// RequestLogger logs one line per request.
func RequestLogger(log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		kv := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"took", time.Since(start),
			"ip", c.IP(),
		}
		switch {
		case status >= 500:
			log.Error("http request", append(kv, "error", err)...)
		case status >= 400:
			log.Warn("http request", kv...)
		default:
			log.Info("http request", kv...)
		}
		return err
	}
}
