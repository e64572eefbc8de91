package routes

import (
	"github.com/gofiber/fiber/v2"

	"shootup-backend/internal/controllers"
	"shootup-backend/internal/services"
)

func EventRoutes(app *fiber.App, svc *services.EventService) {
	events := app.Group("/api/events")

	events.Post("/", controllers.CreateEventHandler(svc))

	// Static paths before the dynamic :event_id match
	events.Get("/explore", controllers.ExploreEventsHandler(svc))
	events.Post("/join", controllers.JoinEventHandler(svc))
	events.Get("/by-code/:code", controllers.GetEventByCodeHandler(svc))

	events.Get("/:event_id", controllers.GetEventByIDHandler(svc))
}
