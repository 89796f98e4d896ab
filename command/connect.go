package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/sirupsen/logrus"
)

const connectMessage = `Usage: |/steam connect [steam_ID] [steam_api_key]|

 - Obtain your Steam ID by viewing your Steam profile. The ID will be shown in your profile URL.
 - Obtain your API key by using the following link: https://steamcommunity.com/dev/apikey
`

func getConnectMessage() string {
	return strings.Replace(connectMessage, "|", "`", -1)
}

func (e *Executor) runConnectCommand(ctx context.Context, args []string, extra Args) (Response, error) {
	if len(args) < 2 {
		return e.response(getConnectMessage()), nil
	}
	steamId := args[0]
	apiKey := args[1]

	players, err := e.Steam.PlayerSummaries(ctx, apiKey, steamId)
	if err != nil {
		logrus.WithError(err).WithField("user_id", extra.UserId).Infoln("Steam credentials check failed.")
		return Response{}, userErrorf("invalid Steam credentials")
	}
	if len(players) == 0 {
		return Response{}, userErrorf("no Steam account with ID %s", steamId)
	}

	err = e.Users.Store(ctx, steamprofile.SteamUser{
		UserId:   extra.UserId,
		SteamId:  steamId,
		ApiToken: apiKey,
		Settings: steamprofile.UserSettings{ShowProfile: false},
	})
	if err != nil {
		return Response{}, fmt.Errorf("store steam user: %w", err)
	}
	e.forgetProfile(ctx, extra.UserId)

	msg := "Steam account successfully connected!\n\n" +
		"Your profile is hidden by default. " +
		"Run `/steam settings show-profile true` to display your Steam " +
		"profile in your user profile"
	return e.response(msg), nil
}

func (e *Executor) runDisconnectCommand(ctx context.Context, args []string, extra Args) (Response, error) {
	err := e.Users.Delete(ctx, extra.UserId)
	if err != nil {
		if errors.Is(err, steamprofile.ErrSteamUserNotFound) {
			return Response{}, userErrorf("no Steam account connected")
		}
		return Response{}, fmt.Errorf("delete steam user: %w", err)
	}
	e.forgetProfile(ctx, extra.UserId)

	return e.response("Steam account successfully disconnected."), nil
}

// forgetProfile drops the cached player summary so popovers see the change.
func (e *Executor) forgetProfile(ctx context.Context, userId steamprofile.UserId) {
	if err := e.Cache.Delete(ctx, userId); err != nil {
		logrus.WithError(err).WithField("user_id", userId).Warningln("Could not drop cached profile.")
	}
}
