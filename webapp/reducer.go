package webapp

import (
	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/host"
)

// ReceivedSteamProfile replaces the cached profile of UserId with Data.
type ReceivedSteamProfile struct {
	UserId steamprofile.UserId
	Data   steamprofile.Profile
}

// State is the plugin namespace of the host state.
type State struct {
	SteamProfiles map[steamprofile.UserId]steamprofile.Profile
}

func Reducer(state interface{}, action host.Action) interface{} {
	s, ok := state.(State)
	if !ok {
		s = State{SteamProfiles: map[steamprofile.UserId]steamprofile.Profile{}}
	}
	return State{
		SteamProfiles: steamProfiles(s.SteamProfiles, action),
	}
}

func steamProfiles(state map[steamprofile.UserId]steamprofile.Profile,
	action host.Action) map[steamprofile.UserId]steamprofile.Profile {
	switch action := action.(type) {
	case ReceivedSteamProfile:
		next := make(map[steamprofile.UserId]steamprofile.Profile, len(state)+1)
		for id, profile := range state {
			next[id] = profile
		}
		next[action.UserId] = action.Data
		return next
	default:
		return state
	}
}
