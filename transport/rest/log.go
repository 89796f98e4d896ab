package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestId = "X-Request-ID"

func LogHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := uuid.NewString()
		ctx.Locals(requestIdLocalsKey, requestId)
		ctx.Set(HeaderRequestId, requestId)

		requestLog(ctx).Infoln("Handling request.")
		return ctx.Next()
	}
}
