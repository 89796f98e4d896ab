package webapp

import (
	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/host"
)

func getPluginState(state host.State) State {
	s, _ := state[host.Namespace(PluginId)].(State)
	return s
}

// SteamProfileInfo returns the cached profile of userId or an empty profile.
func SteamProfileInfo(state host.State, userId steamprofile.UserId) steamprofile.Profile {
	return getPluginState(state).SteamProfiles[userId]
}
