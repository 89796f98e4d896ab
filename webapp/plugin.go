package webapp

import (
	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/host"
)

const PluginId = "steam"

// Plugin is the client half of the Steam plugin.
type Plugin struct {
	Actions *Actions
}

func NewPlugin(client steamprofile.ProfileClient) *Plugin {
	return &Plugin{Actions: NewActions(client)}
}

var _ host.Plugin = (*Plugin)(nil)

func (p *Plugin) Initialize(registry host.Registrar) error {
	registry.RegisterReducer(Reducer)
	registry.RegisterPopoverUserAttributesComponent(connectedUserAttribute{actions: p.Actions})
	return nil
}
