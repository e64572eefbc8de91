package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"shootup-backend/config"
)

func RootHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ShootUp Backend is running"})
	}
}

func HelloHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from ShootUp API"})
	}
}

// DiagnosticsHandler reports store reachability, whether the connection
// string is configured, the database name and up to ten collection names.
func DiagnosticsHandler(client *mongo.Client, cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := fiber.Map{
			"backend":           "running",
			"database":          "not available",
			"database_url":      "not set",
			"database_name":     nil,
			"connection_status": "not connected",
			"collections":       []string{},
		}
		if cfg.DatabaseURL != "" {
			resp["database_url"] = "set"
		}
		if client == nil {
			return c.JSON(resp)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			resp["database"] = "error: " + truncate(err.Error(), 80)
			return c.JSON(resp)
		}

		db := client.Database(cfg.MongoDB)
		resp["database_name"] = db.Name()
		resp["connection_status"] = "connected"

		names, err := db.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			resp["database"] = "connected but error: " + truncate(err.Error(), 80)
			return c.JSON(resp)
		}
		if len(names) > 10 {
			names = names[:10]
		}
		resp["collections"] = names
		resp["database"] = "connected"
		return c.JSON(resp)
	}
}

// truncate shortens s to at most n runes without splitting one.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
