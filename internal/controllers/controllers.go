package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shootup-backend/dto"
	"shootup-backend/internal/services"
)

var validate = validator.New()

const storeTimeout = 5 * time.Second

func reqContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

// serviceError maps service failures onto the wire: missing documents are
// 404, anything else means the store misbehaved and surfaces as 503.
func serviceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrEventNotFound) || errors.Is(err, services.ErrMediaNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: "store unavailable"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
