package state

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"DragBoard/internal/drag"
)

// Tracker follows drag sessions on an element and its surface. It runs its
// own Session over the raw pointer events, so it agrees with whichever
// style is attached about when sessions start and end.
type Tracker struct {
	clock Clock
	log   *zap.Logger
	now   func() time.Time

	mu       sync.Mutex
	session  *drag.Session
	snap     Snapshot
	onChange func(Snapshot)
}

func NewTracker(policy drag.ReentryPolicy, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		log:     log,
		now:     time.Now,
		session: drag.NewSession(policy),
	}
}

// OnChange sets the callback run after every event that changed the
// snapshot. It runs on the goroutine that delivered the event.
func (t *Tracker) OnChange(fn func(Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

// Attach listens on el and surface. The returned func removes the listeners.
func (t *Tracker) Attach(el, surface drag.Target) (detach func()) {
	removers := []func(){
		el.AddPointerListener(drag.PointerDown, func(p drag.Point) { t.Observe(drag.Down(p)) }),
		surface.AddPointerListener(drag.PointerMove, func(p drag.Point) { t.Observe(drag.Move(p)) }),
		surface.AddPointerListener(drag.PointerUp, func(p drag.Point) { t.Observe(drag.Up(p)) }),
	}
	return func() {
		for _, r := range removers {
			r()
		}
	}
}

func (t *Tracker) Observe(ev drag.PointerEvent) {
	t.mu.Lock()
	before := t.session.Phase()
	pe, ok := t.session.Translate(ev)
	after := t.session.Phase()

	changed := ok || before != after
	if ok {
		t.snap.Seq = t.clock.Tick()
		t.snap.Last = pe.Point
		switch pe.Kind {
		case drag.KindStart:
			if before == drag.Dragging {
				t.endLocked("reentered")
			}
			t.snap.SessionID = newSessionID()
			t.snap.Sessions++
			t.snap.Moves = 0
			t.snap.Started = t.now()
			t.log.Debug("drag session started",
				zap.String("session", t.snap.SessionID),
				zap.Stringer("pointer", pe.Point),
				zap.Uint64("seq", t.snap.Seq))
		case drag.KindMove:
			t.snap.Moves++
		}
	}
	if before == drag.Dragging && after == drag.Idle {
		t.endLocked("pointer up")
	}
	t.snap.Phase = after

	snap := t.snap
	fn := t.onChange
	t.mu.Unlock()

	if changed && fn != nil {
		fn(snap)
	}
}

func (t *Tracker) endLocked(reason string) {
	t.log.Debug("drag session ended",
		zap.String("session", t.snap.SessionID),
		zap.String("reason", reason),
		zap.Int("moves", t.snap.Moves),
		zap.Duration("duration", t.now().Sub(t.snap.Started)))
}
