package persistent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/tidwall/buntdb"
)

// BuntProfileCache keeps player summaries in buntdb until TTL passes.
type BuntProfileCache struct {
	Buntdb *buntdb.DB
	TTL    time.Duration
}

var _ steamprofile.ProfileCache = (*BuntProfileCache)(nil)

func profileKey(userId steamprofile.UserId) string {
	return "steam_profile:" + string(userId)
}

func (c *BuntProfileCache) Get(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
	var profile steamprofile.Profile
	err := c.Buntdb.View(func(tx *buntdb.Tx) error {
		serialized, err := tx.Get(profileKey(userId))
		if err != nil {
			return fmt.Errorf("get serialized profile: %w", err)
		}
		if err := json.Unmarshal([]byte(serialized), &profile); err != nil {
			return fmt.Errorf("deserialize profile: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return steamprofile.Profile{}, steamprofile.ErrCacheMiss
		}
		return steamprofile.Profile{}, fmt.Errorf("buntdb view: %w", err)
	}
	return profile, nil
}

func (c *BuntProfileCache) Set(ctx context.Context, userId steamprofile.UserId, profile steamprofile.Profile) error {
	serialized, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("serialize profile: %w", err)
	}
	err = c.Buntdb.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(profileKey(userId), string(serialized), &buntdb.SetOptions{Expires: true, TTL: c.TTL})
		return err
	})
	if err != nil {
		return fmt.Errorf("buntdb update: %w", err)
	}
	return nil
}

func (c *BuntProfileCache) Delete(ctx context.Context, userId steamprofile.UserId) error {
	err := c.Buntdb.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(profileKey(userId))
		return err
	})
	if err != nil && !errors.Is(err, buntdb.ErrNotFound) {
		return fmt.Errorf("buntdb update: %w", err)
	}
	return nil
}
