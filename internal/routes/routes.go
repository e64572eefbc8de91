package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"shootup-backend/config"
	"shootup-backend/dto"
	"shootup-backend/internal/controllers"
	"shootup-backend/internal/repository"
	"shootup-backend/internal/services"
)

type Deps struct {
	Client *mongo.Client
	DB     *mongo.Database
	Cfg    config.Config
	Log    *logrus.Logger
}

// Register wires every endpoint. With no store configured the liveness
// and diagnostic endpoints still respond; everything under /api answers
// 503.
func Register(app *fiber.App, deps Deps) {
	app.Get("/", controllers.RootHandler())
	app.Get("/api/hello", controllers.HelloHandler())
	app.Get("/test", controllers.DiagnosticsHandler(deps.Client, deps.Cfg))

	if deps.DB == nil {
		if deps.Log != nil {
			deps.Log.Warn("no store configured, /api endpoints disabled")
		}
		app.Use("/api", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(dto.ErrorResponse{Error: "store not configured"})
		})
		return
	}

	events := repository.NewEventRepository(deps.DB)
	media := repository.NewMediaRepository(deps.DB)
	likes := repository.NewLikeRepository(deps.DB)
	comments := repository.NewCommentRepository(deps.DB)
	users := repository.NewUserRepository(deps.DB)

	eventSvc := &services.EventService{Events: events, Media: media, Users: users}
	mediaSvc := &services.MediaService{Events: events, Media: media, Likes: likes, Comments: comments}
	userSvc := &services.UserService{Users: users, Events: events, Media: media}

	EventRoutes(app, eventSvc)
	MediaRoutes(app, mediaSvc)
	UserRoutes(app, userSvc)
}
