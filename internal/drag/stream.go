package drag

import (
	"context"
	"sync"
)

const defaultBuffer = 64

// Events merges pointer-downs from el with pointer-moves and pointer-ups
// from surface into one channel, in delivery order. stop removes the
// listeners and closes the channel; events already buffered stay readable,
// so downstream stages drain them before exiting. stop also runs when ctx
// is done and may be called more than once.
func Events(ctx context.Context, el, surface Target, buffer int) (_ <-chan PointerEvent, stop func()) {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	out := make(chan PointerEvent, buffer)

	var (
		mu     sync.Mutex
		closed bool
	)
	send := func(ev PointerEvent) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
		}
	}

	removers := []func(){
		el.AddPointerListener(PointerDown, func(p Point) { send(Down(p)) }),
		surface.AddPointerListener(PointerMove, func(p Point) { send(Move(p)) }),
		surface.AddPointerListener(PointerUp, func(p Point) { send(Up(p)) }),
	}

	var once sync.Once
	stop = func() {
		once.Do(func() {
			for _, r := range removers {
				r()
			}
			mu.Lock()
			closed = true
			close(out)
			mu.Unlock()
		})
	}
	context.AfterFunc(ctx, stop)
	return out, stop
}

// Assemble runs a Session over in and writes the position events it
// produces to out. out is closed when Assemble returns.
func Assemble(ctx context.Context, in <-chan PointerEvent, out chan<- PositionEvent, policy ReentryPolicy) error {
	defer close(out)
	session := NewSession(policy)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-in:
			if !ok {
				return nil
			}
			pe, emit := session.Translate(ev)
			if !emit {
				continue
			}
			select {
			case out <- pe:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// ScanStates folds every event from in with Reduce, starting at seed, and
// writes each resulting state to out. out is closed when ScanStates returns.
func ScanStates(ctx context.Context, in <-chan PositionEvent, out chan<- DragState, seed DragState) error {
	defer close(out)
	s := seed
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-in:
			if !ok {
				return nil
			}
			s = Reduce(s, e)
			select {
			case out <- s:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Track is the stream form without a reducer: each pointer-down is mapped to
// an anchor offset and the moves that follow are mapped to positions until
// the next pointer-up. The offset is taken against the last position Track
// emitted rather than the view, so positions still queued for the view do not
// skew it.
func Track(ctx context.Context, in <-chan PointerEvent, out chan<- Point, start Point, policy ReentryPolicy) error {
	defer close(out)
	var (
		last     = start
		offset   Point
		dragging bool
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-in:
			if !ok {
				return nil
			}
			switch ev.Kind {
			case PointerDown:
				if dragging && policy == ReentryIgnore {
					continue
				}
				offset = last.Sub(ev.Point)
				dragging = true
			case PointerMove:
				if !dragging {
					continue
				}
				last = ev.Point.Add(offset)
				select {
				case out <- last:
				case <-ctx.Done():
					return ctx.Err()
				}
			case PointerUp:
				dragging = false
			}
		}
	}
}

// Apply writes every state from in to the view. It is the only step of the
// pure pipeline with a side effect.
func Apply(ctx context.Context, in <-chan DragState, view View) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-in:
			if !ok {
				return nil
			}
			view.SetPosition(s.Pos)
		}
	}
}

// ApplyPositions is Apply for bare positions.
func ApplyPositions(ctx context.Context, in <-chan Point, view View) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-in:
			if !ok {
				return nil
			}
			view.SetPosition(p)
		}
	}
}
