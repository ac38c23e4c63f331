package handlers

import (
	"lighthouse/internal/app"
	"lighthouse/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

// GamePrefix is the path the PS3 client prepends to every game request.
const GamePrefix = "/LITTLEBIGPLANETPS3_XML"

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	router.Use(app.Middleware.TraceID())

	api := router.Group("/api")
	HealthHandler(api, app.Config)

	game := router.Group(GamePrefix)
	NewSlotHandler(*app, game).Register()

	return nil
}
