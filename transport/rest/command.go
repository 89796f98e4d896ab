package rest

import (
	"strings"

	"github.com/buzkaaclicker/steamprofile/command"
	"github.com/gofiber/fiber/v2"
)

type CommandController struct {
	Executor *command.Executor
}

func (c *CommandController) InstallTo(app *fiber.App) {
	app.Post("/api/v1/command", combineHandlers(requireUserId, c.serveCommand))
}

func (c *CommandController) serveCommand(ctx *fiber.Ctx) error {
	body := struct {
		Command string `json:"command"`
	}{}
	if err := ctx.BodyParser(&body); err != nil {
		requestLog(ctx).WithError(err).Infoln("Invalid body.")
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Command) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no command")
	}

	resp := c.Executor.Execute(ctx.Context(), command.Args{
		UserId:  callerId(ctx),
		Command: body.Command,
	})
	return ctx.JSON(resp)
}
