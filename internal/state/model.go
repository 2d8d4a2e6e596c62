package state

import (
	"fmt"
	"time"

	"DragBoard/internal/drag"
)

// Snapshot describes the latest drag session as seen by a Tracker.
type Snapshot struct {
	SessionID string
	Phase     drag.Phase
	Moves     int
	Sessions  int
	Seq       uint64
	Last      drag.Point
	Started   time.Time
}

func (s Snapshot) String() string {
	if s.SessionID == "" {
		return "no drag yet"
	}
	id := s.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("session %s (%d) %s, %d moves, pointer %s", id, s.Sessions, s.Phase, s.Moves, s.Last)
}
