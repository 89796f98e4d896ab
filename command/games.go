package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/steam"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

const (
	maxCompareUsers = 10
	maxSteamCalls   = 8
)

func (e *Executor) ownedGames(ctx context.Context, userId steamprofile.UserId) ([]steam.Game, error) {
	user, err := e.steamUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	games, err := e.Steam.OwnedGames(ctx, user.ApiToken, user.SteamId)
	if err != nil {
		return nil, fmt.Errorf("owned games of %s: %w", userId, err)
	}
	return games, nil
}

func (e *Executor) runListGamesCommand(ctx context.Context, args []string, extra Args) (Response, error) {
	games, err := e.ownedGames(ctx, extra.UserId)
	if err != nil {
		return Response{}, err
	}

	var output strings.Builder
	for _, game := range games {
		fmt.Fprintf(&output, "- [%s](%s)\n", game.Name, game.StoreLink())
	}
	return e.response(output.String()), nil
}

func (e *Executor) runCompareGamesCommand(ctx context.Context, args []string, extra Args) (Response, error) {
	if len(args) == 0 {
		return Response{}, userErrorf("you must provide a list of users to compare game lists against")
	}
	if len(args) > maxCompareUsers {
		return Response{}, userErrorf("the compare command is currently limited to %d users", maxCompareUsers)
	}

	games, err := e.ownedGames(ctx, extra.UserId)
	if err != nil {
		return Response{}, err
	}
	common := steam.GamesByAppId(games)

	for _, arg := range args {
		games, err := e.ownedGames(ctx, steamprofile.UserId(arg))
		if err != nil {
			return Response{}, err
		}
		owned := steam.GamesByAppId(games)
		for appId := range common {
			if _, ok := owned[appId]; !ok {
				delete(common, appId)
			}
		}
	}

	sorted := make([]steam.Game, 0, len(common))
	for _, game := range common {
		sorted = append(sorted, game)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	output := fmt.Sprintf("Games owned by you and %s\n", strings.Join(args, ", "))
	output += fmt.Sprintf("Total: %d\n", len(sorted))
	for _, game := range sorted {
		output += fmt.Sprintf(" - [%s](%s)\n", game.Name, game.StoreLink())
	}
	return e.response(output), nil
}

type recentGame struct {
	game     steam.Game
	playtime int64
}

func (e *Executor) runListRecentGamesCommand(ctx context.Context, args []string, extra Args) (Response, error) {
	ids, err := e.Users.UserIds(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("list users: %w", err)
	}

	p := pool.NewWithResults[[]steam.Game]().WithMaxGoroutines(maxSteamCalls)
	for _, id := range ids {
		id := id // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loopvar semantics)
		p.Go(func() []steam.Game {
			games, err := e.recentlyPlayedGames(ctx, id)
			if err != nil {
				logrus.WithError(err).
					WithField("user_id", id).
					Errorln("Could not get recently played games.")
				return nil
			}
			return games
		})
	}

	var totalPlaytime int64
	played := map[int64]*recentGame{}
	for _, games := range p.Wait() {
		for _, game := range games {
			totalPlaytime += game.TwoWeekPlaytime
			rg, ok := played[game.AppId]
			if !ok {
				rg = &recentGame{game: game}
				played[game.AppId] = rg
			}
			rg.playtime += game.TwoWeekPlaytime
		}
	}

	sorted := make([]*recentGame, 0, len(played))
	for _, rg := range played {
		sorted = append(sorted, rg)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].playtime == sorted[j].playtime {
			return sorted[i].game.AppId < sorted[j].game.AppId
		}
		return sorted[i].playtime > sorted[j].playtime
	})

	output := fmt.Sprintf("Recently Played Summary for %d Players [%d minutes total]:\n\n", len(ids), totalPlaytime)
	for _, rg := range sorted {
		output += fmt.Sprintf(" - [%s](%s) [%d minutes]\n", rg.game.Name, rg.game.StoreLink(), rg.playtime)
	}
	return e.response(output), nil
}

func (e *Executor) recentlyPlayedGames(ctx context.Context, userId steamprofile.UserId) ([]steam.Game, error) {
	user, err := e.Users.ByUserId(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("get steam user: %w", err)
	}
	return e.Steam.RecentlyPlayedGames(ctx, user.ApiToken, user.SteamId)
}
