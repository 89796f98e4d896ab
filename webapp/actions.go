package webapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/host"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Minimum time between lookups of a user whose profile was not found.
const SteamProfileGetUserTimeout = time.Minute

const steamProfileFetchTimeout = 30 * time.Second

type Actions struct {
	Client   steamprofile.ProfileClient
	Now      func() time.Time
	Cooldown time.Duration
	// Deadline of a single lookup. Zero means no deadline.
	FetchTimeout time.Duration

	inFlight singleflight.Group
	// joined is called after a caller attached to the lookup of userId.
	joined func(userId steamprofile.UserId)
}

func NewActions(client steamprofile.ProfileClient) *Actions {
	return &Actions{
		Client:       client,
		Now:          time.Now,
		Cooldown:     SteamProfileGetUserTimeout,
		FetchTimeout: steamProfileFetchTimeout,
	}
}

// GetSteamUserData fetches the profile of userId unless a recent lookup
// found nothing. Success and not found are dispatched to store, any other
// error is returned without touching the store. Concurrent calls for the
// same user share one request. A caller giving up through ctx does not
// abort the shared lookup, its result is still dispatched.
func (a *Actions) GetSteamUserData(ctx context.Context, store host.Dispatcher,
	userId steamprofile.UserId) (steamprofile.Profile, error) {
	if userId == "" {
		return steamprofile.Profile{}, nil
	}

	profile := SteamProfileInfo(store.GetState(), userId)
	if profile.ThrottledAt(a.Now(), a.Cooldown) {
		logrus.WithField("user_id", userId).Debugln("Steam profile lookup throttled.")
		return steamprofile.Profile{}, nil
	}

	flight := a.inFlight.DoChan(string(userId), func() (interface{}, error) {
		fetchCtx, cancel := a.fetchContext(ctx)
		defer cancel()
		return a.fetch(fetchCtx, store, userId)
	})
	if a.joined != nil {
		a.joined(userId)
	}

	select {
	case res := <-flight:
		if res.Err != nil {
			return steamprofile.Profile{}, res.Err
		}
		return res.Val.(steamprofile.Profile), nil
	case <-ctx.Done():
		return steamprofile.Profile{}, ctx.Err()
	}
}

func (a *Actions) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if a.FetchTimeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, a.FetchTimeout)
}

func (a *Actions) fetch(ctx context.Context, store host.Dispatcher,
	userId steamprofile.UserId) (steamprofile.Profile, error) {
	data, err := a.Client.SteamProfile(ctx, userId)
	if err != nil {
		if errors.Is(err, steamprofile.ErrProfileNotFound) {
			store.Dispatch(ReceivedSteamProfile{
				UserId: userId,
				Data:   steamprofile.NotFoundMarker(a.Now()),
			})
		}
		return steamprofile.Profile{}, fmt.Errorf("get steam profile: %w", err)
	}

	store.Dispatch(ReceivedSteamProfile{
		UserId: userId,
		Data:   data,
	})
	return data, nil
}
