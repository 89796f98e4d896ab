package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"
)

// User is the identity the host renders a popover for.
type User struct {
	Id       string
	Username string
}

// Props are handed by the host to every popover component.
type Props struct {
	User  *User
	Store Dispatcher
}

// Component is a popover user attributes extension.
type Component interface {
	// Mount is called once per opened popover, before the first Render.
	Mount(ctx context.Context, props Props)

	Render(props Props) templ.Component
}

// Registrar is the registration surface a plugin receives on initialization.
type Registrar interface {
	RegisterReducer(reducer Reducer)

	RegisterPopoverUserAttributesComponent(component Component)
}

type Plugin interface {
	Initialize(registry Registrar) error
}

// Host loads plugins and keeps what they register.
type Host struct {
	Store *Store

	mutex      sync.RWMutex
	plugins    map[string]Plugin
	components []Component
}

func New() *Host {
	return &Host{
		Store:   NewStore(),
		plugins: map[string]Plugin{},
	}
}

type Registry struct {
	pluginId string
	host     *Host
}

var _ Registrar = (*Registry)(nil)

func (r *Registry) RegisterReducer(reducer Reducer) {
	r.host.Store.addReducer(Namespace(r.pluginId), reducer)
}

func (r *Registry) RegisterPopoverUserAttributesComponent(component Component) {
	r.host.mutex.Lock()
	defer r.host.mutex.Unlock()
	r.host.components = append(r.host.components, component)
}

// Namespace is the state key of a plugin.
func Namespace(pluginId string) string {
	return "plugins-" + pluginId
}

func (h *Host) RegisterPlugin(pluginId string, plugin Plugin) error {
	h.mutex.Lock()
	if _, ok := h.plugins[pluginId]; ok {
		h.mutex.Unlock()
		return fmt.Errorf("plugin %q already registered", pluginId)
	}
	h.plugins[pluginId] = plugin
	h.mutex.Unlock()

	if err := plugin.Initialize(&Registry{pluginId: pluginId, host: h}); err != nil {
		return fmt.Errorf("initialize plugin %q: %w", pluginId, err)
	}
	logrus.WithField("plugin_id", pluginId).Debugln("Plugin initialized.")
	return nil
}

func (h *Host) popoverComponents() []Component {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return append([]Component(nil), h.components...)
}
