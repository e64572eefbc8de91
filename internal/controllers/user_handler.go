package controllers

import (
	"github.com/gofiber/fiber/v2"

	"shootup-backend/dto"
	"shootup-backend/internal/services"
)

// GetUserHandler godoc
// @Summary Get a user profile
// @Description Unknown users get a synthesized Guest profile that is never stored
// @Tags users
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} dto.UserView
// @Router /api/user/{user_id} [get]
func GetUserHandler(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqContext()
		defer cancel()

		view, err := svc.View(ctx, c.Params("user_id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	}
}

func UpdateUserHandler(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateUserReq
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := reqContext()
		defer cancel()

		profile, updated, err := svc.Update(ctx, c.Params("user_id"), body)
		if err != nil {
			return serviceError(c, err)
		}
		if !updated {
			return c.JSON(dto.AckResponse{OK: true})
		}
		return c.JSON(profile)
	}
}
