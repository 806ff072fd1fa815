package server

import (
	"net/http"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
)

// New assembles the ops application. status supplies the value served on
// /status; nil answers 204 until the first cycle has completed.
func New(metricsHandler http.Handler, status func() any) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/status", func(c *fiber.Ctx) error {
		report := status()
		if report == nil {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(report)
	})

	app.Get("/metrics", adaptor.HTTPHandler(metricsHandler))

	return app
}
