package rest

import (
	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/client"
	"github.com/gofiber/fiber/v2"
)

// RequireValidConfig answers every request with 501 while configErr is set.
func RequireValidConfig(configErr error) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if configErr != nil {
			requestLog(ctx).WithError(configErr).Warningln("Rejected request, invalid configuration.")
			return fiber.NewError(fiber.StatusNotImplemented, "plugin is not configured")
		}
		return ctx.Next()
	}
}

// requireUserId stores the calling user id from the host header.
func requireUserId(ctx *fiber.Ctx) error {
	userId := ctx.Get(client.HeaderUserId)
	if userId == "" {
		return fiber.ErrUnauthorized
	}
	ctx.Locals(userIdLocalsKey, steamprofile.UserId(userId))
	return nil
}

func callerId(ctx *fiber.Ctx) steamprofile.UserId {
	userId, _ := ctx.Locals(userIdLocalsKey).(steamprofile.UserId)
	return userId
}
