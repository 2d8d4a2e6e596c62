package drag

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Binder keeps one style attached at a time and lets front-ends switch
// styles or re-seed the element without tearing down the UI.
type Binder struct {
	ctx     context.Context
	el      Target
	surface Target
	view    View
	opts    Options

	mu     sync.Mutex
	style  Style
	detach func() error
}

func NewBinder(ctx context.Context, el, surface Target, view View, opts Options) *Binder {
	return &Binder{
		ctx:     ctx,
		el:      el,
		surface: surface,
		view:    view,
		opts:    opts,
	}
}

// Use detaches the current style, if any, and attaches style.
func (b *Binder) Use(style Style) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.detachLocked(); err != nil {
		return err
	}
	detach, err := Attach(b.ctx, style, b.el, b.surface, b.view, b.opts)
	if err != nil {
		return err
	}
	b.style = style
	b.detach = detach
	b.opts.logger().Info("drag style in use", zap.Stringer("style", style))
	return nil
}

func (b *Binder) Style() Style {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.style
}

// Reset moves the element to p and re-attaches the current style so the
// pure pipeline is seeded from the new placement.
func (b *Binder) Reset(p Point) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	attached := b.detach != nil
	if err := b.detachLocked(); err != nil {
		return err
	}
	b.view.SetPosition(p)
	if !attached {
		return nil
	}
	detach, err := Attach(b.ctx, b.style, b.el, b.surface, b.view, b.opts)
	if err != nil {
		return err
	}
	b.detach = detach
	return nil
}

func (b *Binder) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.detachLocked()
}

func (b *Binder) detachLocked() error {
	if b.detach == nil {
		return nil
	}
	err := b.detach()
	b.detach = nil
	return err
}
