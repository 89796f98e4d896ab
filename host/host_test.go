package host

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
)

type increment struct{}

func counterReducer(state interface{}, action Action) interface{} {
	count, _ := state.(int)
	if _, ok := action.(increment); ok {
		return count + 1
	}
	return count
}

type counterComponent struct {
	mounts int
}

func (c *counterComponent) Mount(ctx context.Context, props Props) {
	c.mounts++
	props.Store.Dispatch(increment{})
}

func (c *counterComponent) Render(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		count := props.Store.GetState()[Namespace("counter")].(int)
		_, err := w.Write([]byte{byte('0' + count)})
		return err
	})
}

type counterPlugin struct {
	component *counterComponent
	err       error
}

func (p *counterPlugin) Initialize(registry Registrar) error {
	registry.RegisterReducer(counterReducer)
	registry.RegisterPopoverUserAttributesComponent(p.component)
	return p.err
}

func TestStoreDispatch(t *testing.T) {
	assert := assert.New(t)

	store := NewStore()
	store.addReducer("plugins-counter", counterReducer)
	assert.Equal(0, store.GetState()["plugins-counter"])

	before := store.GetState()
	store.Dispatch(increment{})
	store.Dispatch("unknown action")
	assert.Equal(1, store.GetState()["plugins-counter"])
	assert.Equal(0, before["plugins-counter"], "snapshot changed by dispatch")
}

func TestStoreStateWritesDoNotLeak(t *testing.T) {
	assert := assert.New(t)

	store := NewStore()
	store.addReducer("plugins-counter", counterReducer)

	state := store.GetState()
	state["plugins-counter"] = 41
	state["plugins-other"] = "x"

	assert.Equal(0, store.GetState()["plugins-counter"])
	assert.NotContains(store.GetState(), "plugins-other")

	store.Dispatch(increment{})
	assert.Equal(1, store.GetState()["plugins-counter"])
}

func TestRegisterPlugin(t *testing.T) {
	assert := assert.New(t)

	h := New()
	plugin := &counterPlugin{component: &counterComponent{}}
	assert.NoError(h.RegisterPlugin("counter", plugin))
	assert.Error(h.RegisterPlugin("counter", plugin))

	broken := &counterPlugin{component: &counterComponent{}, err: errors.New("no config")}
	assert.Error(h.RegisterPlugin("broken", broken))
}

func TestPopoverMountsOnce(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	h := New()
	component := &counterComponent{}
	if !assert.NoError(h.RegisterPlugin("counter", &counterPlugin{component: component})) {
		return
	}

	popover := h.OpenPopover(ctx, User{Id: "u1", Username: "<makin>"})
	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		if !assert.NoError(popover.Render(ctx, &buf)) {
			return
		}
		assert.Equal(`<div class="user-popover" data-user-id="u1">`+
			`<span class="user-popover__username">@&lt;makin&gt;</span>1</div>`, buf.String())
	}
	assert.Equal(1, component.mounts)

	h.OpenPopover(ctx, User{Id: "u1"})
	assert.Equal(2, component.mounts)
}
