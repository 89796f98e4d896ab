package mock

import (
	"context"
	"sync/atomic"

	"github.com/buzkaaclicker/steamprofile"
)

type ProfileClient struct {
	SteamProfileFn func(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error)

	calls int64
}

func (c *ProfileClient) SteamProfile(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
	atomic.AddInt64(&c.calls, 1)
	return c.SteamProfileFn(ctx, userId)
}

// Calls is the number of SteamProfile invocations so far.
func (c *ProfileClient) Calls() int {
	return int(atomic.LoadInt64(&c.calls))
}

type ProfileCache struct {
	GetFn    func(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error)
	SetFn    func(ctx context.Context, userId steamprofile.UserId, profile steamprofile.Profile) error
	DeleteFn func(ctx context.Context, userId steamprofile.UserId) error
}

func (c ProfileCache) Get(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
	return c.GetFn(ctx, userId)
}

func (c ProfileCache) Set(ctx context.Context, userId steamprofile.UserId, profile steamprofile.Profile) error {
	return c.SetFn(ctx, userId, profile)
}

func (c ProfileCache) Delete(ctx context.Context, userId steamprofile.UserId) error {
	return c.DeleteFn(ctx, userId)
}

// NopProfileCache never holds anything.
var NopProfileCache = ProfileCache{
	GetFn: func(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
		return steamprofile.Profile{}, steamprofile.ErrCacheMiss
	},
	SetFn: func(ctx context.Context, userId steamprofile.UserId, profile steamprofile.Profile) error {
		return nil
	},
	DeleteFn: func(ctx context.Context, userId steamprofile.UserId) error {
		return nil
	},
}
