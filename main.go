package main

import (
	"context"
	"errors"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"shootup-backend/bootstrap"
	"shootup-backend/config"
	"shootup-backend/database"
	"shootup-backend/internal/logger"
	"shootup-backend/internal/middleware"
	"shootup-backend/internal/routes"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New("shootup-backend", cfg.LogLevel)

	var client *mongo.Client
	var db *mongo.Database

	c, err := database.Connect(context.Background(), cfg.DatabaseURL)
	switch {
	case err == nil:
		client = c
		db = client.Database(cfg.MongoDB)
		defer func() {
			if err := database.Disconnect(client); err != nil {
				log.WithField("error", err.Error()).Warn("mongo disconnect failed")
			}
		}()
		log.WithField("database", cfg.MongoDB).Info("connected to MongoDB")

		if err := bootstrap.EnsureLikeIndexes(db); err != nil {
			log.WithField("error", err.Error()).Fatal("ensure indexes failed")
		}
	case errors.Is(err, database.ErrNotConfigured):
		// Liveness and /test still serve; /api answers 503.
		log.Warn("DATABASE_URL not set, starting without a store")
	default:
		log.WithField("error", err.Error()).Fatal("mongo connection failed")
	}

	app := fiber.New(fiber.Config{AppName: "ShootUp API"})

	app.Use(recover.New())
	// Wide-open CORS, kept as-is from the product requirements. Lock this
	// down before exposing the service beyond the app frontend.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(log))

	prom := fiberprometheus.New("shootup-backend")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	routes.Register(app, routes.Deps{
		Client: client,
		DB:     db,
		Cfg:    cfg,
		Log:    log,
	})

	log.WithField("port", cfg.Port).Info("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithField("error", err.Error()).Fatal("server stopped")
	}
}
