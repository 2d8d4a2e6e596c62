package term

import (
	"github.com/gdamore/tcell/v2"

	"DragBoard/internal/drag"
)

// mouseState turns tcell's button masks into pointer transitions. tcell
// reports the buttons held at the time of each event, not presses and
// releases, so the previous mask is needed to tell them apart.
type mouseState struct {
	held bool
}

func (m *mouseState) translate(ev *tcell.EventMouse) drag.PointerEvent {
	x, y := ev.Position()
	p := drag.Pt(float64(x), float64(y))

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !m.held:
		m.held = true
		return drag.Down(p)
	case !pressed && m.held:
		m.held = false
		return drag.Up(p)
	}
	return drag.Move(p)
}
