package drag

import (
	"errors"
	"fmt"
)

// Phase is the session-level state of a drag.
type Phase uint8

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// ReentryPolicy decides what a pointer-down does while a session is
// already open.
type ReentryPolicy uint8

const (
	// ReentryReset opens a new session anchored at the current position.
	ReentryReset ReentryPolicy = iota
	// ReentryIgnore drops the second pointer-down and keeps the anchor.
	ReentryIgnore
)

var ErrUnknownPolicy = errors.New("unknown reentry policy")

func (p ReentryPolicy) String() string {
	if p == ReentryIgnore {
		return "ignore"
	}
	return "reset"
}

func ParseReentryPolicy(s string) (ReentryPolicy, error) {
	switch s {
	case "", "reset":
		return ReentryReset, nil
	case "ignore":
		return ReentryIgnore, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Session turns raw pointer events into the PositionEvents fed to Reduce.
//
//	Idle     --down--> Dragging   emits DragStart
//	Dragging --move--> Dragging   emits DragMove
//	Dragging --up----> Idle
//
// Moves and ups seen while Idle emit nothing. A Session is not safe for
// concurrent use; it lives on whichever goroutine delivers the events.
type Session struct {
	phase  Phase
	policy ReentryPolicy
}

func NewSession(policy ReentryPolicy) *Session {
	return &Session{policy: policy}
}

func (s *Session) Phase() Phase { return s.phase }

// Translate advances the state machine by one raw event and reports the
// position event it produces, if any.
func (s *Session) Translate(ev PointerEvent) (PositionEvent, bool) {
	switch ev.Kind {
	case PointerDown:
		if s.phase == Dragging && s.policy == ReentryIgnore {
			return PositionEvent{}, false
		}
		s.phase = Dragging
		return DragStart(ev.Point), true
	case PointerMove:
		if s.phase != Dragging {
			return PositionEvent{}, false
		}
		return DragMove(ev.Point), true
	case PointerUp:
		s.phase = Idle
	}
	return PositionEvent{}, false
}
