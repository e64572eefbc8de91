package routes

import (
	"github.com/gofiber/fiber/v2"

	"shootup-backend/internal/controllers"
	"shootup-backend/internal/services"
)

func MediaRoutes(app *fiber.App, svc *services.MediaService) {
	media := app.Group("/api/media")

	media.Post("/", controllers.UploadMediaHandler(svc))
	media.Get("/event/:event_id", controllers.ListEventMediaHandler(svc))
	media.Post("/:media_id/like", controllers.ToggleLikeHandler(svc))
	media.Get("/:media_id/comments", controllers.ListCommentsHandler(svc))
	media.Post("/:media_id/comments", controllers.AddCommentHandler(svc))
}
