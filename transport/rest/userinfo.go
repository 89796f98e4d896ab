package rest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/steam"
	"github.com/gofiber/fiber/v2"
)

type UserInfoController struct {
	Users steamprofile.SteamUserStore
	Steam steamprofile.SteamApi
	Cache steamprofile.ProfileCache
}

func (c *UserInfoController) InstallTo(app *fiber.App) {
	app.Post("/api/v1/userinfo", combineHandlers(requireUserId, c.serveUserInfo))
}

func (c *UserInfoController) serveUserInfo(ctx *fiber.Ctx) error {
	body := struct {
		UserId string `json:"user_id"`
	}{}
	if err := ctx.BodyParser(&body); err != nil {
		requestLog(ctx).WithError(err).Infoln("Invalid body.")
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	userId := steamprofile.UserId(strings.TrimSpace(body.UserId))
	if userId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no user id")
	}

	user, err := c.Users.ByUserId(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, steamprofile.ErrSteamUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "steam profile not found")
		} else {
			return fmt.Errorf("get steam user: %w", err)
		}
	}
	if !user.Settings.ShowProfile {
		return fiber.NewError(fiber.StatusNotFound, "steam profile not found")
	}

	profile, err := c.Cache.Get(ctx.Context(), userId)
	if err == nil {
		return ctx.JSON(profile)
	}
	if !errors.Is(err, steamprofile.ErrCacheMiss) {
		requestLog(ctx).WithError(err).Warningln("Profile cache lookup failed.")
	}

	players, err := c.Steam.PlayerSummaries(ctx.Context(), user.ApiToken, user.SteamId)
	if err != nil {
		if errors.Is(err, steam.ErrUnauthorized) {
			requestLog(ctx).
				WithField("user_id", userId).
				Warningln("Stored Steam api key was rejected.")
			return fiber.NewError(fiber.StatusNotFound, "steam profile not found")
		} else {
			return fmt.Errorf("steam player summaries: %w", err)
		}
	}
	if len(players) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "steam profile not found")
	}

	profile = steamprofile.ProfileFromPlayer(players[0])
	if err = c.Cache.Set(ctx.Context(), userId, profile); err != nil {
		requestLog(ctx).WithError(err).Warningln("Could not cache profile.")
	}
	return ctx.JSON(profile)
}
