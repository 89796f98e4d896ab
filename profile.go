package steamprofile

import (
	"context"
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("steam profile not found")

var ErrCacheMiss = errors.New("profile cache miss")

type UserId string

// Profile is the cached Steam data of a single chat user.
//
// A profile is either empty (never fetched), throttled (only LastTry set after a
// not found lookup) or fetched (display fields set, LastTry zero).
type Profile struct {
	SteamId     string `json:"steamid,omitempty"`
	PersonaName string `json:"personaname,omitempty"`
	ProfileUrl  string `json:"profileurl,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	// Unix milliseconds of the last lookup that ended with ErrProfileNotFound.
	LastTry int64 `json:"last_try,omitempty"`
}

func (p Profile) HasDisplayName() bool {
	return p.PersonaName != ""
}

// ThrottledAt reports whether a not found marker younger than cooldown exists.
func (p Profile) ThrottledAt(now time.Time, cooldown time.Duration) bool {
	if p.LastTry == 0 {
		return false
	}
	return now.UnixMilli()-p.LastTry < cooldown.Milliseconds()
}

// NotFoundMarker returns the record stored after a not found lookup.
func NotFoundMarker(now time.Time) Profile {
	return Profile{LastTry: now.UnixMilli()}
}

type ProfileClient interface {
	// SteamProfile returns ErrProfileNotFound when the user has no visible profile.
	SteamProfile(ctx context.Context, userId UserId) (Profile, error)
}

type ProfileCache interface {
	// Get returns ErrCacheMiss when nothing fresh is cached.
	Get(ctx context.Context, userId UserId) (Profile, error)

	Set(ctx context.Context, userId UserId, profile Profile) error

	Delete(ctx context.Context, userId UserId) error
}
