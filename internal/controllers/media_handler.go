package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"shootup-backend/dto"
	"shootup-backend/internal/services"
)

// UploadMediaHandler godoc
// @Summary Upload media to an event
// @Tags media
// @Accept json
// @Produce json
// @Param body body dto.UploadMediaReq true "Media fields"
// @Success 201 {object} models.Media
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/media [post]
func UploadMediaHandler(svc *services.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UploadMediaReq
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return badRequest(c, err.Error())
		}

		eventID, err := bson.ObjectIDFromHex(body.EventID)
		if err != nil {
			return badRequest(c, "invalid event id")
		}

		ctx, cancel := reqContext()
		defer cancel()

		m, err := svc.Upload(ctx, eventID, body)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// ListEventMediaHandler godoc
// @Summary List media of an event
// @Tags media
// @Produce json
// @Param event_id path string true "Event id"
// @Param sort query string false "time | participant | challenge"
// @Success 200 {object} dto.MediaListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/media/event/{event_id} [get]
func ListEventMediaHandler(svc *services.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := bson.ObjectIDFromHex(c.Params("event_id"))
		if err != nil {
			return badRequest(c, "invalid event id")
		}

		ctx, cancel := reqContext()
		defer cancel()

		items, err := svc.ListForEvent(ctx, eventID, c.Query("sort", "time"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(dto.MediaListResponse{Items: items})
	}
}

// ToggleLikeHandler godoc
// @Summary Toggle a like on media
// @Description A second toggle by the same user removes the like again
// @Tags media
// @Accept json
// @Produce json
// @Param media_id path string true "Media id"
// @Param body body dto.ToggleLikeReq true "Liking user"
// @Success 200 {object} models.Media
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/media/{media_id}/like [post]
func ToggleLikeHandler(svc *services.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mediaID, err := bson.ObjectIDFromHex(c.Params("media_id"))
		if err != nil {
			return badRequest(c, "invalid media id")
		}

		var body dto.ToggleLikeReq
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := reqContext()
		defer cancel()

		m, err := svc.ToggleLike(ctx, mediaID, body.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(m)
	}
}

func ListCommentsHandler(svc *services.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mediaID, err := bson.ObjectIDFromHex(c.Params("media_id"))
		if err != nil {
			return badRequest(c, "invalid media id")
		}

		ctx, cancel := reqContext()
		defer cancel()

		items, err := svc.ListComments(ctx, mediaID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(dto.CommentListResponse{Items: items})
	}
}

func AddCommentHandler(svc *services.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mediaID, err := bson.ObjectIDFromHex(c.Params("media_id"))
		if err != nil {
			return badRequest(c, "invalid media id")
		}

		var body dto.AddCommentReq
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := reqContext()
		defer cancel()

		if err := svc.AddComment(ctx, mediaID, body); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(dto.AckResponse{OK: true})
	}
}
