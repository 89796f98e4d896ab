package host

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Popover is an opened profile popover of one user.
type Popover struct {
	props      Props
	components []Component
}

// OpenPopover mounts every registered user attributes component for user.
func (h *Host) OpenPopover(ctx context.Context, user User) *Popover {
	p := &Popover{
		props:      Props{User: &user, Store: h.Store},
		components: h.popoverComponents(),
	}
	for _, c := range p.components {
		c.Mount(ctx, p.props)
	}
	return p
}

// Render writes the popover using the current store state. It never remounts.
func (p *Popover) Render(ctx context.Context, w io.Writer) error {
	attributes := make([]templ.Component, len(p.components))
	for i, c := range p.components {
		attributes[i] = c.Render(p.props)
	}
	return popoverView(*p.props.User, attributes).Render(ctx, w)
}
