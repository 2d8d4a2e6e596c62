package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"DragBoard/internal/dom"
	"DragBoard/internal/drag"
)

func TestTracker(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tr := NewTracker(drag.ReentryReset, zap.New(core))

	rect := dom.NewElement("draggableRect")
	surface := dom.NewElement("svgCanvas")
	detach := tr.Attach(rect, surface)
	defer detach()

	var snaps []Snapshot
	tr.OnChange(func(s Snapshot) { snaps = append(snaps, s) })

	surface.Dispatch(drag.Move(drag.Pt(1, 1)))
	assert.Empty(t, snaps)
	assert.Equal(t, "no drag yet", tr.Snapshot().String())

	rect.Dispatch(drag.Down(drag.Pt(50, 50)))
	surface.Dispatch(drag.Move(drag.Pt(70, 60)))
	surface.Dispatch(drag.Move(drag.Pt(55, 55)))
	surface.Dispatch(drag.Up(drag.Pt(55, 55)))
	surface.Dispatch(drag.Move(drag.Pt(200, 200)))

	first := tr.Snapshot()
	require.NotEmpty(t, first.SessionID)
	assert.Equal(t, drag.Idle, first.Phase)
	assert.Equal(t, 2, first.Moves)
	assert.Equal(t, 1, first.Sessions)
	assert.Equal(t, uint64(3), first.Seq)
	assert.Equal(t, drag.Pt(55, 55), first.Last)
	assert.Len(t, snaps, 4)

	rect.Dispatch(drag.Down(drag.Pt(15, 15)))
	second := tr.Snapshot()
	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, 2, second.Sessions)
	assert.Equal(t, drag.Dragging, second.Phase)
	assert.Zero(t, second.Moves)

	assert.Equal(t, 2, logs.FilterMessage("drag session started").Len())
	assert.Equal(t, 1, logs.FilterMessage("drag session ended").Len())
}

func TestTracker_Reentry(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tr := NewTracker(drag.ReentryReset, zap.New(core))

	tr.Observe(drag.Down(drag.Pt(0, 0)))
	tr.Observe(drag.Down(drag.Pt(1, 1)))

	assert.Equal(t, 2, tr.Snapshot().Sessions)
	entries := logs.FilterMessage("drag session ended").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "reentered", entries[0].ContextMap()["reason"])
}

func TestClock(t *testing.T) {
	var c Clock
	assert.Equal(t, uint64(1), c.Tick())
	assert.Equal(t, uint64(2), c.Tick())
	assert.Equal(t, uint64(2), c.Now())
}
