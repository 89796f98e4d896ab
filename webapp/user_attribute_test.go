package webapp

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/host"
	"github.com/buzkaaclicker/steamprofile/mock"
	"github.com/stretchr/testify/assert"
)

func render(t *testing.T, c templ.Component) string {
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestUserAttributeRender(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		profile steamprofile.Profile
		html    string
	}{
		{profile: steamprofile.Profile{}, html: ""},
		{profile: steamprofile.Profile{LastTry: 1000}, html: ""},
		{profile: steamprofile.Profile{ProfileUrl: "http://x/42"}, html: ""},
		{
			profile: steamprofile.Profile{PersonaName: "Alice", ProfileUrl: "http://x/42"},
			html: `<div style="margin: 5px 0"><a href="http://x/42" target="_blank" rel="noopener noreferrer">` +
				`<i class="fa fa-steam"></i> Alice</a></div>`,
		},
		{
			profile: steamprofile.Profile{PersonaName: "<b>&</b>", ProfileUrl: "javascript:alert(1)"},
			html: `<div style="margin: 5px 0"><a href="about:invalid#TemplFailedSanitizationURL" target="_blank" rel="noopener noreferrer">` +
				`<i class="fa fa-steam"></i> &lt;b&gt;&amp;&lt;/b&gt;</a></div>`,
		},
		{
			profile: steamprofile.Profile{PersonaName: "Bob", ProfileUrl: `https://x/?q="a"`},
			html: `<div style="margin: 5px 0"><a href="https://x/?q=&#34;a&#34;" target="_blank" rel="noopener noreferrer">` +
				`<i class="fa fa-steam"></i> Bob</a></div>`,
		},
	}

	for i, tc := range cases {
		html := render(t, UserAttribute{}.Render(UserAttributeProps{Id: "42", Profile: tc.profile}))
		assert.Equal(tc.html, html, "index: %d", i)
	}
}

type recordingActions struct {
	ids []steamprofile.UserId
}

func (a *recordingActions) GetSteamUserData(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
	a.ids = append(a.ids, userId)
	return steamprofile.Profile{}, steamprofile.ErrProfileNotFound
}

func TestUserAttributeDidMount(t *testing.T) {
	actions := &recordingActions{}
	UserAttribute{}.ComponentDidMount(context.Background(), UserAttributeProps{Id: "42", Actions: actions})
	assert.Equal(t, []steamprofile.UserId{"42"}, actions.ids)
}

func TestPopoverScenarios(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	f := newFixture(t, func(ctx context.Context, userId steamprofile.UserId) (steamprofile.Profile, error) {
		switch userId {
		case "42":
			return steamprofile.Profile{PersonaName: "Alice", ProfileUrl: "http://x/42"}, nil
		default:
			return steamprofile.Profile{}, steamprofile.ErrProfileNotFound
		}
	})

	alice := f.host.OpenPopover(ctx, host.User{Id: "42"})
	assert.Equal(steamprofile.Profile{PersonaName: "Alice", ProfileUrl: "http://x/42"}, f.profile("42"))
	var buf bytes.Buffer
	if !assert.NoError(alice.Render(ctx, &buf)) {
		return
	}
	assert.Contains(buf.String(), `<i class="fa fa-steam"></i> Alice</a>`)

	nobody := f.host.OpenPopover(ctx, host.User{Id: "99"})
	buf.Reset()
	if !assert.NoError(nobody.Render(ctx, &buf)) {
		return
	}
	assert.Equal(`<div class="user-popover" data-user-id="99"></div>`, buf.String())
	assert.Equal(steamprofile.NotFoundMarker(testNow), f.profile("99"))
	assert.Equal(2, f.client.Calls())

	// re-rendering never refetches, reopening within the cooldown is throttled
	buf.Reset()
	assert.NoError(nobody.Render(ctx, &buf))
	f.host.OpenPopover(ctx, host.User{Id: "99"})
	assert.Equal(2, f.client.Calls())

	f.host.OpenPopover(ctx, host.User{})
	assert.Equal(2, f.client.Calls())
}

func TestInitializeRegistersReducerAndComponent(t *testing.T) {
	assert := assert.New(t)

	registry := &fakeRegistrar{}
	err := NewPlugin(&mock.ProfileClient{}).Initialize(registry)
	assert.NoError(err)
	assert.Len(registry.reducers, 1)
	assert.Len(registry.components, 1)
}

type fakeRegistrar struct {
	reducers   []host.Reducer
	components []host.Component
}

func (r *fakeRegistrar) RegisterReducer(reducer host.Reducer) {
	r.reducers = append(r.reducers, reducer)
}

func (r *fakeRegistrar) RegisterPopoverUserAttributesComponent(component host.Component) {
	r.components = append(r.components, component)
}
