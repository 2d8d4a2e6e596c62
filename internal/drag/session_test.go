package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translateAll(s *Session, evs ...PointerEvent) []PositionEvent {
	var out []PositionEvent
	for _, ev := range evs {
		if pe, ok := s.Translate(ev); ok {
			out = append(out, pe)
		}
	}
	return out
}

func TestSession_Translate(t *testing.T) {
	testCases := []struct {
		name     string
		policy   ReentryPolicy
		events   []PointerEvent
		expected []PositionEvent
		phase    Phase
	}{
		{
			name:   "moves before down are dropped",
			events: []PointerEvent{Move(Pt(1, 1)), Up(Pt(1, 1)), Move(Pt(2, 2))},
			phase:  Idle,
		},
		{
			name:     "down then moves",
			events:   []PointerEvent{Down(Pt(5, 5)), Move(Pt(6, 6)), Move(Pt(7, 7))},
			expected: []PositionEvent{DragStart(Pt(5, 5)), DragMove(Pt(6, 6)), DragMove(Pt(7, 7))},
			phase:    Dragging,
		},
		{
			name:     "up ends the session",
			events:   []PointerEvent{Down(Pt(5, 5)), Move(Pt(6, 6)), Up(Pt(6, 6)), Move(Pt(200, 200))},
			expected: []PositionEvent{DragStart(Pt(5, 5)), DragMove(Pt(6, 6))},
			phase:    Idle,
		},
		{
			name:     "reentrant down resets",
			policy:   ReentryReset,
			events:   []PointerEvent{Down(Pt(5, 5)), Down(Pt(8, 8)), Move(Pt(9, 9))},
			expected: []PositionEvent{DragStart(Pt(5, 5)), DragStart(Pt(8, 8)), DragMove(Pt(9, 9))},
			phase:    Dragging,
		},
		{
			name:     "reentrant down ignored",
			policy:   ReentryIgnore,
			events:   []PointerEvent{Down(Pt(5, 5)), Down(Pt(8, 8)), Move(Pt(9, 9))},
			expected: []PositionEvent{DragStart(Pt(5, 5)), DragMove(Pt(9, 9))},
			phase:    Dragging,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(tc.policy)
			got := translateAll(s, tc.events...)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.phase, s.Phase())
		})
	}
}

// The scenario from the drag walkthrough: two sessions with a stray move
// between them.
func TestSession_AnchorScenario(t *testing.T) {
	s := NewSession(ReentryReset)
	state := NewState(Pt(10, 10))
	step := func(ev PointerEvent) {
		if pe, ok := s.Translate(ev); ok {
			state = Reduce(state, pe)
		}
	}

	step(Down(Pt(50, 50)))
	require.Equal(t, Pt(-40, -40), state.Offset)
	step(Move(Pt(70, 60)))
	require.Equal(t, Pt(30, 20), state.Pos)
	step(Move(Pt(55, 55)))
	require.Equal(t, Pt(15, 15), state.Pos)
	step(Up(Pt(55, 55)))
	step(Move(Pt(200, 200)))
	require.Equal(t, Pt(15, 15), state.Pos)

	step(Down(Pt(15, 15)))
	require.Equal(t, Pt(0, 0), state.Offset)
	step(Move(Pt(25, 30)))
	require.Equal(t, Pt(25, 30), state.Pos)
}

func TestParseReentryPolicy(t *testing.T) {
	p, err := ParseReentryPolicy("ignore")
	require.NoError(t, err)
	assert.Equal(t, ReentryIgnore, p)

	p, err = ParseReentryPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ReentryReset, p)

	_, err = ParseReentryPolicy("queue")
	require.ErrorIs(t, err, ErrUnknownPolicy)
}
