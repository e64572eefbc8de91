package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"shootup-backend/dto"
	"shootup-backend/internal/services"
)

// CreateEventHandler godoc
// @Summary Create an event
// @Description Create an event with a freshly generated 6-character join code
// @Tags events
// @Accept json
// @Produce json
// @Param body body dto.CreateEventReq true "Event fields"
// @Success 201 {object} models.Event
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/events [post]
func CreateEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateEventReq
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := reqContext()
		defer cancel()

		ev, err := svc.Create(ctx, body)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ev)
	}
}

// ExploreEventsHandler godoc
// @Summary Explore public events
// @Tags events
// @Produce json
// @Param limit query int false "Max events to return (default 24)"
// @Success 200 {object} dto.ExploreResponse
// @Router /api/events/explore [get]
func ExploreEventsHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := int64(c.QueryInt("limit", 0))

		ctx, cancel := reqContext()
		defer cancel()

		items, err := svc.Explore(ctx, limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(dto.ExploreResponse{Events: items})
	}
}

// JoinEventHandler godoc
// @Summary Join an event by code
// @Description Code matching is case-insensitive; the user is added to the participant set
// @Tags events
// @Accept json
// @Produce json
// @Param body body dto.JoinEventReq true "Join request"
// @Success 200 {object} models.Event
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/join [post]
func JoinEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.JoinEventReq
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := reqContext()
		defer cancel()

		ev, err := svc.Join(ctx, body)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(ev)
	}
}

func GetEventByCodeHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqContext()
		defer cancel()

		ev, err := svc.GetByCode(ctx, c.Params("code"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(ev)
	}
}

func GetEventByIDHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("event_id"))
		if err != nil {
			return badRequest(c, "invalid event id")
		}

		ctx, cancel := reqContext()
		defer cancel()

		ev, err := svc.GetByID(ctx, id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(ev)
	}
}
