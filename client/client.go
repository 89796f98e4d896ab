package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/steam"
	"github.com/gofiber/fiber/v2"
)

const HeaderUserId = "Mattermost-User-ID"

// Client talks to the plugin server on behalf of the viewing user.
type Client struct {
	PluginUrl string
	// Id of the user looking at the popover.
	ViewerId string
	Timeout  time.Duration
}

func New(pluginUrl string, viewerId string) *Client {
	return &Client{
		PluginUrl: strings.TrimSuffix(pluginUrl, "/"),
		ViewerId:  viewerId,
		Timeout:   10 * time.Second,
	}
}

var _ steamprofile.ProfileClient = (*Client)(nil)

// Impl of plugin api /api/v1/userinfo
func (c *Client) SteamProfile(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return steamprofile.Profile{}, err
	}

	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.Header.Set(HeaderUserId, c.ViewerId)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.SetRequestURI(c.PluginUrl + "/api/v1/userinfo")
	agent.Timeout(steam.RequestTimeout(ctx, c.Timeout))

	type ReqBody struct {
		UserId string `json:"user_id"`
	}
	reqBody, err := json.Marshal(ReqBody{UserId: string(userId)})
	if err != nil {
		return steamprofile.Profile{}, fmt.Errorf("marshal body: %w", err)
	}
	req.SetBody(reqBody)

	if err = agent.Parse(); err != nil {
		return steamprofile.Profile{}, fmt.Errorf("agent parse: %w", err)
	}

	statusCode, body, errs := agent.Bytes()
	if len(errs) != 0 {
		return steamprofile.Profile{}, fmt.Errorf("agent bytes: %v", errs)
	}

	switch {
	case statusCode == fiber.StatusNotFound:
		return steamprofile.Profile{}, steamprofile.ErrProfileNotFound
	case statusCode != fiber.StatusOK:
		return steamprofile.Profile{}, fmt.Errorf("invalid status code %d: %s", statusCode, string(body))
	case len(body) == 0:
		return steamprofile.Profile{}, steamprofile.ErrProfileNotFound
	}

	var profile steamprofile.Profile
	if err = json.Unmarshal(body, &profile); err != nil {
		return steamprofile.Profile{}, fmt.Errorf("unmarshal body: %w", err)
	}
	return profile, nil
}
