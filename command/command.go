package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/sirupsen/logrus"
)

const (
	Trigger = "steam"

	ResponseTypeEphemeral = "ephemeral"
)

const helpText = `* |/steam connect [steam_ID] [steam_api_key]| - Connect your account to your Steam account
* |/steam disconnect| - Disconnect your account from your Steam account
* |/steam list| - Shows the list of games in your Steam library
* |/steam recent| - Shows recent game stats about other Steam plugin users
* |/steam compare [user_id1] [user_id2] [etc.]| - Compare owned games with one or multiple other Steam plugin users
* |/steam settings [setting] [value]| - Update your user settings
  * |setting| can be "show-profile"
  * |value| can be "true" or "false"
* |/steam info| - Shows plugin information`

func getHelp() string {
	return strings.Replace(helpText, "|", "`", -1)
}

type Response struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
	Username     string `json:"username"`
	IconUrl      string `json:"icon_url"`
}

type Args struct {
	UserId  steamprofile.UserId
	Command string
}

// UserError is shown to the user as is.
type UserError struct {
	Err error
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func userErrorf(format string, a ...interface{}) error {
	return &UserError{Err: fmt.Errorf(format, a...)}
}

// Executor runs /steam slash commands.
type Executor struct {
	Users     steamprofile.SteamUserStore
	Steam     steamprofile.SteamApi
	Cache     steamprofile.ProfileCache
	PluginId  string
	Version   string
	BuildHash string
}

type handler func(ctx context.Context, args []string, extra Args) (Response, error)

func (e *Executor) response(text string) Response {
	return Response{
		ResponseType: ResponseTypeEphemeral,
		Text:         text,
		Username:     Trigger,
		IconUrl:      fmt.Sprintf("/plugins/%s/profile.png", e.PluginId),
	}
}

func (e *Executor) Execute(ctx context.Context, extra Args) Response {
	fields := strings.Fields(extra.Command)
	if len(fields) < 2 {
		return e.response(getHelp())
	}

	var h handler
	switch fields[1] {
	case "connect":
		h = e.runConnectCommand
	case "disconnect":
		h = e.runDisconnectCommand
	case "list":
		h = e.runListGamesCommand
	case "compare":
		h = e.runCompareGamesCommand
	case "recent":
		h = e.runListRecentGamesCommand
	case "settings":
		h = e.runSettingsCommand
	case "info":
		h = e.runInfoCommand
	default:
		return e.response(getHelp())
	}

	resp, err := h(ctx, fields[2:], extra)
	if err != nil {
		log := logrus.WithError(err).
			WithField("user_id", extra.UserId).
			WithField("command", fields[1])
		var userErr *UserError
		if errors.As(err, &userErr) {
			log.Infoln("Command rejected.")
			return e.response(fmt.Sprintf("__Error: %s__\n\nRun `/steam help` for usage instructions.", userErr.Error()))
		}
		log.Errorln("Command failed.")
		return e.response("An unknown error occurred. Please talk to your administrator for help.")
	}
	return resp
}

// steamUser returns the linked account of userId or a user error.
func (e *Executor) steamUser(ctx context.Context, userId steamprofile.UserId) (steamprofile.SteamUser, error) {
	user, err := e.Users.ByUserId(ctx, userId)
	if err != nil {
		if errors.Is(err, steamprofile.ErrSteamUserNotFound) {
			return steamprofile.SteamUser{}, userErrorf("no Steam account connected for %s, run `/steam connect` first", userId)
		}
		return steamprofile.SteamUser{}, fmt.Errorf("get steam user: %w", err)
	}
	return user, nil
}

func (e *Executor) runInfoCommand(ctx context.Context, args []string, extra Args) (Response, error) {
	ids, err := e.Users.UserIds(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("list users: %w", err)
	}

	text := fmt.Sprintf("Steam plugin version: %s, build %s\n\n", e.Version, e.BuildHash)
	text += "Stats:\n"
	text += fmt.Sprintf(" - Plugin Users: %d\n", len(ids))
	return e.response(text), nil
}
