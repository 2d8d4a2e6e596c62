package drag

// Imperative wires the drag with plain listeners. A pointer-down on el
// captures the offset from the view and registers move and up listeners on
// surface; the up listener removes both again. No state outlives a session
// except the view itself.
func Imperative(el, surface Target, view View, opts Options) (detach func()) {
	var removeMove, removeUp func()
	stop := func() {
		if removeMove != nil {
			removeMove()
			removeMove = nil
		}
		if removeUp != nil {
			removeUp()
			removeUp = nil
		}
	}

	removeDown := el.AddPointerListener(PointerDown, func(p Point) {
		if removeMove != nil && opts.Policy == ReentryIgnore {
			return
		}
		stop()
		offset := view.Position().Sub(p)
		removeMove = surface.AddPointerListener(PointerMove, func(p Point) {
			view.SetPosition(p.Add(offset))
		})
		removeUp = surface.AddPointerListener(PointerUp, func(Point) {
			stop()
		})
	})

	return func() {
		removeDown()
		stop()
	}
}
