package steamprofile

import (
	"context"

	"github.com/buzkaaclicker/steamprofile/steam"
)

type SteamApi interface {
	PlayerSummaries(ctx context.Context, apiKey string, steamIds ...string) ([]steam.Player, error)

	OwnedGames(ctx context.Context, apiKey string, steamId string) ([]steam.Game, error)

	RecentlyPlayedGames(ctx context.Context, apiKey string, steamId string) ([]steam.Game, error)
}

// ProfileFromPlayer maps a Steam player summary to the record served to clients.
func ProfileFromPlayer(p steam.Player) Profile {
	return Profile{
		SteamId:     p.SteamId,
		PersonaName: p.PersonaName,
		ProfileUrl:  p.ProfileUrl,
		Avatar:      p.Avatar,
	}
}
