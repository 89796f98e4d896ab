package mock

import (
	"context"

	"github.com/buzkaaclicker/steamprofile"
)

type SteamUserStore struct {
	StoreFn func(ctx context.Context, user steamprofile.SteamUser) error

	ByUserIdFn func(ctx context.Context, userId steamprofile.UserId) (steamprofile.SteamUser, error)

	DeleteFn func(ctx context.Context, userId steamprofile.UserId) error

	UserIdsFn func(ctx context.Context) ([]steamprofile.UserId, error)
}

func (s SteamUserStore) Store(ctx context.Context, user steamprofile.SteamUser) error {
	return s.StoreFn(ctx, user)
}

func (s SteamUserStore) ByUserId(ctx context.Context, userId steamprofile.UserId) (steamprofile.SteamUser, error) {
	return s.ByUserIdFn(ctx, userId)
}

func (s SteamUserStore) Delete(ctx context.Context, userId steamprofile.UserId) error {
	return s.DeleteFn(ctx, userId)
}

func (s SteamUserStore) UserIds(ctx context.Context) ([]steamprofile.UserId, error) {
	return s.UserIdsFn(ctx)
}
