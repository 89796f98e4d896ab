package command

import (
	"context"
	"errors"
	"fmt"
)

func (e *Executor) runSettingsCommand(ctx context.Context, args []string, extra Args) (Response, error) {
	if len(args) == 0 {
		return Response{}, &UserError{Err: errors.New("must provide a setting")}
	}
	if len(args) == 1 {
		return Response{}, &UserError{Err: errors.New("must provide setting value")}
	}
	setting := args[0]
	value := args[1]

	switch setting {
	case "show-profile":
		var shown bool
		switch value {
		case "true":
			shown = true
		case "false":
			shown = false
		default:
			return Response{}, userErrorf("%s is not a valid 'show-profile' setting, must be 'true' or 'false'", value)
		}

		user, err := e.steamUser(ctx, extra.UserId)
		if err != nil {
			return Response{}, err
		}
		if user.Settings.ShowProfile == shown {
			return e.response(fmt.Sprintf("Setting %s is already %s", setting, value)), nil
		}
		user.Settings.ShowProfile = shown
		if err = e.Users.Store(ctx, user); err != nil {
			return Response{}, fmt.Errorf("store steam user: %w", err)
		}
		e.forgetProfile(ctx, extra.UserId)
	default:
		return Response{}, userErrorf("%s is not a valid setting, must be 'show-profile'", setting)
	}

	return e.response(fmt.Sprintf("Setting %s updated to %s", setting, value)), nil
}
