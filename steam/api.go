package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var ErrUnauthorized = errors.New("steam: unauthorized")

const (
	DefaultBaseUrl  = "https://api.steampowered.com"
	DefaultStoreUrl = "https://store.steampowered.com"

	endpointPlayerSummaries     = "ISteamUser/GetPlayerSummaries/v0002"
	endpointOwnedGames          = "IPlayerService/GetOwnedGames/v0001"
	endpointRecentlyPlayedGames = "IPlayerService/GetRecentlyPlayedGames/v0001"

	defaultTimeout = 10 * time.Second
)

// Api is a Steam Web API client.
type Api struct {
	BaseUrl string
	Timeout time.Duration
}

func NewApi(baseUrl string) Api {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return Api{BaseUrl: strings.TrimSuffix(baseUrl, "/"), Timeout: defaultTimeout}
}

// Impl of /ISteamUser/GetPlayerSummaries/v0002
func (a Api) PlayerSummaries(ctx context.Context, apiKey string, steamIds ...string) ([]Player, error) {
	query := url.Values{}
	query.Set("key", apiKey)
	query.Set("steamids", strings.Join(steamIds, ","))
	query.Set("format", "json")

	var response PlayersListResponse
	if err := a.get(ctx, endpointPlayerSummaries, query, &response); err != nil {
		return nil, fmt.Errorf("player summaries: %w", err)
	}
	return response.Response.Players, nil
}

// Impl of /IPlayerService/GetOwnedGames/v0001
func (a Api) OwnedGames(ctx context.Context, apiKey string, steamId string) ([]Game, error) {
	games, err := a.games(ctx, endpointOwnedGames, apiKey, steamId)
	if err != nil {
		return nil, fmt.Errorf("owned games: %w", err)
	}
	return games, nil
}

// Impl of /IPlayerService/GetRecentlyPlayedGames/v0001
func (a Api) RecentlyPlayedGames(ctx context.Context, apiKey string, steamId string) ([]Game, error) {
	games, err := a.games(ctx, endpointRecentlyPlayedGames, apiKey, steamId)
	if err != nil {
		return nil, fmt.Errorf("recently played games: %w", err)
	}
	return games, nil
}

func (a Api) games(ctx context.Context, endpoint string, apiKey string, steamId string) ([]Game, error) {
	query := url.Values{}
	query.Set("key", apiKey)
	query.Set("steamid", steamId)
	query.Set("include_appinfo", "true")
	query.Set("format", "json")

	var response GamesListResponse
	if err := a.get(ctx, endpoint, query, &response); err != nil {
		return nil, err
	}
	return response.Response.Games, nil
}

func (a Api) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(fiber.MethodGet)
	req.SetRequestURI(a.BaseUrl + "/" + endpoint + "/?" + query.Encode())
	agent.Timeout(RequestTimeout(ctx, a.Timeout))

	err := agent.Parse()
	if err != nil {
		return fmt.Errorf("agent parse: %w", err)
	}

	statusCode, body, errs := agent.Bytes()
	if len(errs) != 0 {
		return fmt.Errorf("agent bytes: %v", errs)
	}

	switch statusCode {
	case fiber.StatusOK:
	case fiber.StatusUnauthorized, fiber.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("invalid status code %d: %s", statusCode, string(body))
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal body: %w", err)
	}
	return nil
}

// RequestTimeout shortens fallback to the time left until the ctx deadline.
func RequestTimeout(ctx context.Context, fallback time.Duration) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return fallback
	}
	left := time.Until(deadline)
	if fallback > 0 && fallback < left {
		return fallback
	}
	return left
}
