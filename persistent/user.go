package persistent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/uptrace/bun"
)

type SteamUser struct {
	bun.BaseModel `bun:"table:steam_user"`

	UserId      string    `bun:",pk"`
	CreatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	SteamId     string    `bun:",notnull"`
	ApiToken    string    `bun:",notnull"` // encrypted
	ShowProfile bool      `bun:",notnull"`
}

func (u SteamUser) ToDomain(apiToken string) steamprofile.SteamUser {
	return steamprofile.SteamUser{
		UserId:    steamprofile.UserId(u.UserId),
		SteamId:   u.SteamId,
		ApiToken:  apiToken,
		Settings:  steamprofile.UserSettings{ShowProfile: u.ShowProfile},
		CreatedAt: u.CreatedAt,
	}
}

// SteamUserStore keeps linked accounts in postgres with encrypted api tokens.
type SteamUserStore struct {
	DB            *bun.DB
	EncryptionKey []byte
}

var _ steamprofile.SteamUserStore = (*SteamUserStore)(nil)

func (s *SteamUserStore) Store(ctx context.Context, user steamprofile.SteamUser) error {
	encryptedToken, err := encrypt(s.EncryptionKey, user.ApiToken)
	if err != nil {
		return fmt.Errorf("encrypt api token: %w", err)
	}

	_, err = s.DB.NewInsert().
		Model(&SteamUser{
			UserId:      string(user.UserId),
			SteamId:     user.SteamId,
			ApiToken:    encryptedToken,
			ShowProfile: user.Settings.ShowProfile,
		}).
		On(`CONFLICT (user_id) DO UPDATE SET steam_id=EXCLUDED.steam_id, ` +
			`api_token=EXCLUDED.api_token, show_profile=EXCLUDED.show_profile`).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert steam user: %w", err)
	}
	return nil
}

func (s *SteamUserStore) ByUserId(ctx context.Context, userId steamprofile.UserId) (steamprofile.SteamUser, error) {
	user := new(SteamUser)
	err := s.DB.NewSelect().
		Model(user).
		Where(`user_id=?`, string(userId)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return steamprofile.SteamUser{}, steamprofile.ErrSteamUserNotFound
		}
		return steamprofile.SteamUser{}, fmt.Errorf("select steam user: %w", err)
	}

	apiToken, err := decrypt(s.EncryptionKey, user.ApiToken)
	if err != nil {
		return steamprofile.SteamUser{}, fmt.Errorf("decrypt api token: %w", err)
	}
	return user.ToDomain(apiToken), nil
}

func (s *SteamUserStore) Delete(ctx context.Context, userId steamprofile.UserId) error {
	res, err := s.DB.NewDelete().
		Model((*SteamUser)(nil)).
		Where(`user_id=?`, string(userId)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete steam user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return steamprofile.ErrSteamUserNotFound
	}
	return nil
}

func (s *SteamUserStore) UserIds(ctx context.Context) ([]steamprofile.UserId, error) {
	var ids []string
	err := s.DB.NewSelect().
		Model((*SteamUser)(nil)).
		Column("user_id").
		Order("user_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("select user ids: %w", err)
	}

	mapped := make([]steamprofile.UserId, len(ids))
	for i, id := range ids {
		mapped[i] = steamprofile.UserId(id)
	}
	return mapped, nil
}
