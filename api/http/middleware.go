package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Options configures the middleware shared by all routes.
type Options struct {
	// CORSOrigin is the single browser origin allowed to call the API.
	CORSOrigin string
	Logger     *slog.Logger
}

// Use installs panic recovery, request ids, access logging and CORS.
func Use(app *fiber.App, opts Options) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(accessLog(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigin,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		// empty AllowHeaders reflects the preflight's requested headers
		AllowHeaders: "",
		// fiber rejects credentials together with a wildcard origin
		AllowCredentials: opts.CORSOrigin != "*",
	}))
}

func accessLog(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(c.Context(), level, "http request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		)
		return nil
	}
}
