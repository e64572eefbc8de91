package routes

import (
	"github.com/gofiber/fiber/v2"

	"shootup-backend/internal/controllers"
	"shootup-backend/internal/services"
)

func UserRoutes(app *fiber.App, svc *services.UserService) {
	user := app.Group("/api/user")

	user.Get("/:user_id", controllers.GetUserHandler(svc))
	user.Put("/:user_id", controllers.UpdateUserHandler(svc))
}
