package webapp

import (
	"context"

	"github.com/a-h/templ"
	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/host"
)

// connectedUserAttribute feeds UserAttribute from the host store.
type connectedUserAttribute struct {
	actions *Actions
}

var _ host.Component = connectedUserAttribute{}

type boundActions struct {
	actions *Actions
	store   host.Dispatcher
}

func (b boundActions) GetSteamUserData(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
	return b.actions.GetSteamUserData(ctx, b.store, userId)
}

func (c connectedUserAttribute) mapProps(props host.Props) UserAttributeProps {
	var id steamprofile.UserId
	if props.User != nil {
		id = steamprofile.UserId(props.User.Id)
	}
	return UserAttributeProps{
		Id:      id,
		Profile: SteamProfileInfo(props.Store.GetState(), id),
		Actions: boundActions{actions: c.actions, store: props.Store},
	}
}

func (c connectedUserAttribute) Mount(ctx context.Context, props host.Props) {
	UserAttribute{}.ComponentDidMount(ctx, c.mapProps(props))
}

func (c connectedUserAttribute) Render(props host.Props) templ.Component {
	return UserAttribute{}.Render(c.mapProps(props))
}
