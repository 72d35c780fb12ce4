// Package webapi builds the Fiber application around the wired app.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/awesomegic/bankledger/app"
	ledgerapi "github.com/awesomegic/bankledger/webapi/ledger"
)

// SetupApp registers the middleware stack and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "bankledger",
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
	}))

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	ledgerapi.Routes(fiberApp, a.Ledger)
	return fiberApp
}
