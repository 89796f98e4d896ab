package steamprofile

import (
	"context"
	"errors"
	"time"
)

var ErrSteamUserNotFound = errors.New("steam user not found")

// SteamUser links a chat user to a Steam account.
type SteamUser struct {
	UserId    UserId
	SteamId   string
	ApiToken  string
	Settings  UserSettings
	CreatedAt time.Time
}

// UserSettings are controlled by the user with `/steam settings`.
type UserSettings struct {
	ShowProfile bool
}

type SteamUserStore interface {
	// Store creates or replaces the linked account of user.UserId.
	Store(ctx context.Context, user SteamUser) error

	ByUserId(ctx context.Context, userId UserId) (SteamUser, error)

	Delete(ctx context.Context, userId UserId) error

	// Ids of all users with a linked account.
	UserIds(ctx context.Context) ([]UserId, error)
}
