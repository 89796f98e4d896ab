package command

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/inmem"
	"github.com/buzkaaclicker/steamprofile/mock"
	"github.com/buzkaaclicker/steamprofile/steam"
	"github.com/stretchr/testify/assert"
)

type executorFixture struct {
	users    *inmem.SteamUserStore
	executor *Executor

	mutex   sync.Mutex
	dropped []steamprofile.UserId
}

func newExecutorFixture(api mock.SteamApi) *executorFixture {
	f := &executorFixture{users: inmem.NewSteamUserStore()}
	cache := mock.NopProfileCache
	cache.DeleteFn = func(ctx context.Context, userId steamprofile.UserId) error {
		f.mutex.Lock()
		defer f.mutex.Unlock()
		f.dropped = append(f.dropped, userId)
		return nil
	}
	f.executor = &Executor{
		Users:     f.users,
		Steam:     api,
		Cache:     cache,
		PluginId:  "steam",
		Version:   "1.0.0",
		BuildHash: "abc123",
	}
	return f
}

func (f *executorFixture) link(userId steamprofile.UserId, steamId string) {
	_ = f.users.Store(context.Background(), steamprofile.SteamUser{
		UserId:   userId,
		SteamId:  steamId,
		ApiToken: "token-" + steamId,
	})
}

func (f *executorFixture) run(userId steamprofile.UserId, command string) Response {
	return f.executor.Execute(context.Background(), Args{UserId: userId, Command: command})
}

// ownedBySteamId answers OwnedGames from a fixed library per steam id.
func ownedBySteamId(libraries map[string][]steam.Game) mock.SteamApi {
	return mock.SteamApi{
		OwnedGamesFn: func(ctx context.Context, apiKey string, steamId string) ([]steam.Game, error) {
			if apiKey != "token-"+steamId {
				return nil, steam.ErrUnauthorized
			}
			return libraries[steamId], nil
		},
	}
}

func TestExecuteHelp(t *testing.T) {
	assert := assert.New(t)
	f := newExecutorFixture(mock.SteamApi{})

	for _, command := range []string{"/steam", "/steam help", "/steam unknown"} {
		resp := f.run("u1", command)
		assert.Equal(ResponseTypeEphemeral, resp.ResponseType, command)
		assert.Equal(Trigger, resp.Username, command)
		assert.Equal("/plugins/steam/profile.png", resp.IconUrl, command)
		assert.Contains(resp.Text, "`/steam connect [steam_ID] [steam_api_key]`", command)
		assert.NotContains(resp.Text, "|", command)
	}
}

func TestExecuteConnect(t *testing.T) {
	assert := assert.New(t)
	f := newExecutorFixture(mock.SteamApi{
		PlayerSummariesFn: func(ctx context.Context, apiKey string, steamIds ...string) ([]steam.Player, error) {
			if apiKey != "good-key" {
				return nil, steam.ErrUnauthorized
			}
			return []steam.Player{{SteamId: steamIds[0], PersonaName: "gabe"}}, nil
		},
	})

	resp := f.run("u1", "/steam connect")
	assert.Contains(resp.Text, "Usage: `/steam connect")

	resp = f.run("u1", "/steam connect 765 bad-key")
	assert.Contains(resp.Text, "__Error: invalid Steam credentials__")
	_, err := f.users.ByUserId(context.Background(), "u1")
	assert.ErrorIs(err, steamprofile.ErrSteamUserNotFound)

	resp = f.run("u1", "/steam connect 765 good-key")
	assert.Contains(resp.Text, "Steam account successfully connected!")
	user, err := f.users.ByUserId(context.Background(), "u1")
	if !assert.NoError(err) {
		return
	}
	assert.Equal("765", user.SteamId)
	assert.Equal("good-key", user.ApiToken)
	assert.False(user.Settings.ShowProfile)
	assert.Equal([]steamprofile.UserId{"u1"}, f.dropped)
}

func TestExecuteDisconnect(t *testing.T) {
	assert := assert.New(t)
	f := newExecutorFixture(mock.SteamApi{})

	resp := f.run("u1", "/steam disconnect")
	assert.Contains(resp.Text, "__Error: no Steam account connected__")

	f.link("u1", "765")
	resp = f.run("u1", "/steam disconnect")
	assert.Equal("Steam account successfully disconnected.", resp.Text)
	_, err := f.users.ByUserId(context.Background(), "u1")
	assert.ErrorIs(err, steamprofile.ErrSteamUserNotFound)
	assert.Equal([]steamprofile.UserId{"u1"}, f.dropped)
}

func TestExecuteSettings(t *testing.T) {
	f := newExecutorFixture(mock.SteamApi{})
	f.link("u1", "765")

	cases := []struct {
		command string
		text    string
		shown   bool
	}{
		{command: "/steam settings", text: "__Error: must provide a setting__"},
		{command: "/steam settings show-profile", text: "__Error: must provide setting value__"},
		{command: "/steam settings volume 11", text: "volume is not a valid setting"},
		{command: "/steam settings show-profile maybe", text: "maybe is not a valid 'show-profile' setting"},
		{command: "/steam settings show-profile false", text: "Setting show-profile is already false"},
		{command: "/steam settings show-profile true", text: "Setting show-profile updated to true", shown: true},
		{command: "/steam settings show-profile true", text: "Setting show-profile is already true", shown: true},
	}
	for _, c := range cases {
		t.Run(c.command, func(t *testing.T) {
			assert := assert.New(t)
			resp := f.run("u1", c.command)
			assert.Contains(resp.Text, c.text)

			user, err := f.users.ByUserId(context.Background(), "u1")
			if !assert.NoError(err) {
				return
			}
			assert.Equal(c.shown, user.Settings.ShowProfile)
		})
	}
	assert.Equal(t, []steamprofile.UserId{"u1"}, f.dropped)
}

func TestExecuteSettingsNotConnected(t *testing.T) {
	f := newExecutorFixture(mock.SteamApi{})
	resp := f.run("u1", "/steam settings show-profile true")
	assert.Contains(t, resp.Text, "no Steam account connected for u1")
}

func TestExecuteList(t *testing.T) {
	assert := assert.New(t)
	f := newExecutorFixture(ownedBySteamId(map[string][]steam.Game{
		"765": {{AppId: 400, Name: "Portal"}, {AppId: 620, Name: "Portal 2"}},
	}))

	resp := f.run("u1", "/steam list")
	assert.Contains(resp.Text, "run `/steam connect` first")

	f.link("u1", "765")
	resp = f.run("u1", "/steam list")
	assert.Equal("- [Portal](https://store.steampowered.com/app/400)\n"+
		"- [Portal 2](https://store.steampowered.com/app/620)\n", resp.Text)
}

func TestExecuteCompare(t *testing.T) {
	assert := assert.New(t)
	f := newExecutorFixture(ownedBySteamId(map[string][]steam.Game{
		"1": {{AppId: 400, Name: "Portal"}, {AppId: 620, Name: "Portal 2"}, {AppId: 70, Name: "Half-Life"}},
		"2": {{AppId: 620, Name: "Portal 2"}, {AppId: 70, Name: "Half-Life"}},
		"3": {{AppId: 70, Name: "Half-Life"}, {AppId: 620, Name: "Portal 2"}, {AppId: 10, Name: "Counter-Strike"}},
	}))
	f.link("u1", "1")
	f.link("u2", "2")
	f.link("u3", "3")

	resp := f.run("u1", "/steam compare")
	assert.Contains(resp.Text, "you must provide a list of users")

	resp = f.run("u1", "/steam compare "+strings.Repeat("u2 ", 11))
	assert.Contains(resp.Text, "limited to 10 users")

	resp = f.run("u1", "/steam compare u2 u4")
	assert.Contains(resp.Text, "no Steam account connected for u4")

	resp = f.run("u1", "/steam compare u2 u3")
	assert.Equal("Games owned by you and u2, u3\n"+
		"Total: 2\n"+
		" - [Half-Life](https://store.steampowered.com/app/70)\n"+
		" - [Portal 2](https://store.steampowered.com/app/620)\n", resp.Text)
}

func TestExecuteRecent(t *testing.T) {
	assert := assert.New(t)
	f := newExecutorFixture(mock.SteamApi{
		RecentlyPlayedGamesFn: func(ctx context.Context, apiKey string, steamId string) ([]steam.Game, error) {
			switch steamId {
			case "1":
				return []steam.Game{
					{AppId: 70, Name: "Half-Life", TwoWeekPlaytime: 30},
					{AppId: 620, Name: "Portal 2", TwoWeekPlaytime: 100},
				}, nil
			case "2":
				return []steam.Game{{AppId: 70, Name: "Half-Life", TwoWeekPlaytime: 90}}, nil
			default:
				return nil, errors.New("steam is down")
			}
		},
	})
	f.link("u1", "1")
	f.link("u2", "2")
	f.link("u3", "3")

	resp := f.run("u1", "/steam recent")
	assert.Equal("Recently Played Summary for 3 Players [220 minutes total]:\n\n"+
		" - [Half-Life](https://store.steampowered.com/app/70) [120 minutes]\n"+
		" - [Portal 2](https://store.steampowered.com/app/620) [100 minutes]\n", resp.Text)
}

func TestExecuteInfo(t *testing.T) {
	assert := assert.New(t)
	f := newExecutorFixture(mock.SteamApi{})
	f.link("u1", "1")
	f.link("u2", "2")

	resp := f.run("u1", "/steam info")
	assert.Equal("Steam plugin version: 1.0.0, build abc123\n\nStats:\n - Plugin Users: 2\n", resp.Text)
}

func TestExecuteInternalError(t *testing.T) {
	assert := assert.New(t)
	f := newExecutorFixture(mock.SteamApi{})
	f.executor.Users = mock.SteamUserStore{
		UserIdsFn: func(ctx context.Context) ([]steamprofile.UserId, error) {
			return nil, errors.New("connection refused")
		},
	}

	resp := f.run("u1", "/steam info")
	assert.Equal("An unknown error occurred. Please talk to your administrator for help.", resp.Text)
}
