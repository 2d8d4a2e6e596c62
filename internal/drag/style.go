package drag

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Style selects how the drag behaviour is wired to the host.
type Style uint8

const (
	StyleImperative Style = iota
	StyleObservable
	StylePure
	// StyleSync is the pure reducer run by a Controller on the dispatching
	// goroutine, with no channels in between.
	StyleSync
)

var ErrUnknownStyle = errors.New("unknown drag style")

var styleNames = map[Style]string{
	StyleImperative: "imperative",
	StyleObservable: "observable",
	StylePure:       "pure",
	StyleSync:       "sync",
}

// Styles lists every style in display order.
func Styles() []Style {
	return []Style{StyleImperative, StyleObservable, StylePure, StyleSync}
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Options tune Attach. The zero value is usable.
type Options struct {
	Policy ReentryPolicy
	// Buffer is the capacity of each channel in the stream styles.
	Buffer int
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Attach wires style between the element, the surface and the view. The
// returned func detaches it and, for the stream styles, waits for the
// pipeline goroutines to exit. Cancelling ctx detaches as well.
func Attach(ctx context.Context, style Style, el, surface Target, view View, opts Options) (detach func() error, err error) {
	log := opts.logger().With(zap.Stringer("style", style))

	switch style {
	case StyleImperative:
		remove := Imperative(el, surface, view, opts)
		log.Debug("attached")
		return func() error {
			remove()
			log.Debug("detached")
			return nil
		}, nil
	case StyleSync:
		remove := NewController(view, opts.Policy, log).Listen(el, surface)
		log.Debug("attached")
		return func() error {
			remove()
			log.Debug("detached")
			return nil
		}, nil
	case StyleObservable:
		return runPipeline(ctx, log, func(ctx context.Context, g *errgroup.Group) func() {
			events, stop := Events(ctx, el, surface, opts.Buffer)
			positions := make(chan Point, bufferOf(opts))
			start := view.Position()
			g.Go(func() error { return Track(ctx, events, positions, start, opts.Policy) })
			g.Go(func() error { return ApplyPositions(ctx, positions, view) })
			return stop
		}), nil
	case StylePure:
		return runPipeline(ctx, log, func(ctx context.Context, g *errgroup.Group) func() {
			events, stop := Events(ctx, el, surface, opts.Buffer)
			positions := make(chan PositionEvent, bufferOf(opts))
			states := make(chan DragState, bufferOf(opts))
			seed := NewState(view.Position())
			g.Go(func() error { return Assemble(ctx, events, positions, opts.Policy) })
			g.Go(func() error { return ScanStates(ctx, positions, states, seed) })
			g.Go(func() error { return Apply(ctx, states, view) })
			return stop
		}), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(style))
}

func bufferOf(opts Options) int {
	if opts.Buffer <= 0 {
		return defaultBuffer
	}
	return opts.Buffer
}

// runPipeline starts the stages built by build. Detaching stops the event
// source and waits for every stage to drain what was already queued, so the
// view ends on the last position produced. Only cancellation of the parent
// ctx abandons queued positions.
func runPipeline(ctx context.Context, log *zap.Logger, build func(context.Context, *errgroup.Group) (stop func())) func() error {
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	stop := build(gctx, g)
	log.Debug("attached")

	return func() error {
		stop()
		err := g.Wait()
		cancel()
		log.Debug("detached")
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}
