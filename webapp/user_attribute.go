package webapp

import (
	"context"
	"errors"

	"github.com/a-h/templ"
	"github.com/buzkaaclicker/steamprofile"
	"github.com/sirupsen/logrus"
)

type UserAttributeActions interface {
	GetSteamUserData(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error)
}

type UserAttributeProps struct {
	Id      steamprofile.UserId
	Profile steamprofile.Profile
	Actions UserAttributeActions
}

// UserAttribute shows a link to the Steam profile in the user popover.
type UserAttribute struct{}

func (UserAttribute) ComponentDidMount(ctx context.Context, props UserAttributeProps) {
	_, err := props.Actions.GetSteamUserData(ctx, props.Id)
	if err != nil && !errors.Is(err, steamprofile.ErrProfileNotFound) {
		logrus.WithError(err).
			WithField("user_id", props.Id).
			Warningln("Could not get steam profile.")
	}
}

func (UserAttribute) Render(props UserAttributeProps) templ.Component {
	if !props.Profile.HasDisplayName() {
		return templ.NopComponent
	}
	return steamProfileLink(props.Profile)
}
