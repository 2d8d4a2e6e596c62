package drag

// DragState is the value folded by Reduce. Pos is the last committed
// rectangle placement. Offset is the anchor captured by the most recent
// DragStart and is only meaningful when Anchored is set.
type DragState struct {
	Pos      Point
	Offset   Point
	Anchored bool
}

// NewState seeds a DragState from the element's starting placement.
func NewState(pos Point) DragState {
	return DragState{Pos: pos}
}

// Reduce folds one event into the previous state and returns the next one.
// It never mutates s and has no side effects.
//
// A DragMove that arrives before any DragStart has no anchor to apply and
// leaves the state as it was.
func Reduce(s DragState, e PositionEvent) DragState {
	switch e.Kind {
	case KindStart:
		return DragState{Pos: s.Pos, Offset: s.Pos.Sub(e.Point), Anchored: true}
	case KindMove:
		if !s.Anchored {
			return s
		}
		return DragState{Pos: e.Point.Add(s.Offset), Offset: s.Offset, Anchored: true}
	}
	return s
}

// Fold applies events to seed in order and returns the final state.
func Fold(seed DragState, events ...PositionEvent) DragState {
	s := seed
	for _, e := range events {
		s = Reduce(s, e)
	}
	return s
}

// Scan is Fold that keeps every intermediate state, one per event.
func Scan(seed DragState, events ...PositionEvent) []DragState {
	states := make([]DragState, 0, len(events))
	s := seed
	for _, e := range events {
		s = Reduce(s, e)
		states = append(states, s)
	}
	return states
}
