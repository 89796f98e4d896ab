package persistent

import (
	"context"
	"testing"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/stretchr/testify/assert"
)

func TestSteamUserStore(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
		return
	}
	assert := assert.New(t)
	ctx := context.Background()

	db := PgOpenTest(ctx)
	defer db.Close()
	if !assert.NoError(CreateSchema(ctx, db)) {
		return
	}
	_, err := db.NewTruncateTable().Model((*SteamUser)(nil)).Exec(ctx)
	if !assert.NoError(err) {
		return
	}

	store := &SteamUserStore{DB: db, EncryptionKey: []byte("0123456789abcdef")}

	_, err = store.ByUserId(ctx, "ww_makin_c")
	assert.ErrorIs(err, steamprofile.ErrSteamUserNotFound)

	user := steamprofile.SteamUser{UserId: "ww_makin_c", SteamId: "76561197960287930", ApiToken: "secret-token"}
	if !assert.NoError(store.Store(ctx, user)) {
		return
	}

	var raw SteamUser
	err = db.NewSelect().Model(&raw).Where("user_id=?", "ww_makin_c").Scan(ctx)
	if assert.NoError(err) {
		assert.NotEqual("secret-token", raw.ApiToken, "token stored in plain text")
	}

	found, err := store.ByUserId(ctx, "ww_makin_c")
	if !assert.NoError(err) {
		return
	}
	assert.Equal("secret-token", found.ApiToken)
	assert.Equal(user.SteamId, found.SteamId)
	assert.False(found.Settings.ShowProfile)

	found.Settings.ShowProfile = true
	assert.NoError(store.Store(ctx, found))
	found, _ = store.ByUserId(ctx, "ww_makin_c")
	assert.True(found.Settings.ShowProfile)

	ids, err := store.UserIds(ctx)
	assert.NoError(err)
	assert.Equal([]steamprofile.UserId{"ww_makin_c"}, ids)

	assert.NoError(store.Delete(ctx, "ww_makin_c"))
	assert.ErrorIs(store.Delete(ctx, "ww_makin_c"), steamprofile.ErrSteamUserNotFound)
}
