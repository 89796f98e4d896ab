package rest

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

type AssetsController struct {
	Dir string
}

func (c *AssetsController) InstallTo(app *fiber.App) {
	app.Get("/profile.png", c.serveProfileIcon)
}

func (c *AssetsController) serveProfileIcon(ctx *fiber.Ctx) error {
	return ctx.SendFile(filepath.Join(c.Dir, "profile.png"))
}
