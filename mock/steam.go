package mock

import (
	"context"

	"github.com/buzkaaclicker/steamprofile/steam"
)

type SteamApi struct {
	PlayerSummariesFn func(ctx context.Context, apiKey string, steamIds ...string) ([]steam.Player, error)

	OwnedGamesFn func(ctx context.Context, apiKey string, steamId string) ([]steam.Game, error)

	RecentlyPlayedGamesFn func(ctx context.Context, apiKey string, steamId string) ([]steam.Game, error)
}

func (a SteamApi) PlayerSummaries(ctx context.Context, apiKey string, steamIds ...string) ([]steam.Player, error) {
	return a.PlayerSummariesFn(ctx, apiKey, steamIds...)
}

func (a SteamApi) OwnedGames(ctx context.Context, apiKey string, steamId string) ([]steam.Game, error) {
	return a.OwnedGamesFn(ctx, apiKey, steamId)
}

func (a SteamApi) RecentlyPlayedGames(ctx context.Context, apiKey string, steamId string) ([]steam.Game, error) {
	return a.RecentlyPlayedGamesFn(ctx, apiKey, steamId)
}
