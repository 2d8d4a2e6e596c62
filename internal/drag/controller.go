package drag

import "go.uber.org/zap"

// Controller runs session assembly, Reduce and the apply step in the
// caller's turn. It is the single-threaded form of the pure style: hand it
// every pointer event from the UI thread and the view is updated before
// Handle returns.
type Controller struct {
	session *Session
	state   DragState
	view    View
	log     *zap.Logger
}

// NewController seeds its state from the view's current position.
func NewController(view View, policy ReentryPolicy, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		session: NewSession(policy),
		state:   NewState(view.Position()),
		view:    view,
		log:     log,
	}
}

func (c *Controller) Handle(ev PointerEvent) {
	pe, ok := c.session.Translate(ev)
	if !ok {
		return
	}
	c.state = Reduce(c.state, pe)
	c.log.Debug("state",
		zap.Stringer("event", pe.Kind),
		zap.Stringer("pos", c.state.Pos),
		zap.Stringer("offset", c.state.Offset))
	c.view.SetPosition(c.state.Pos)
}

func (c *Controller) State() DragState { return c.state }

func (c *Controller) Phase() Phase { return c.session.Phase() }

// Listen registers the controller on the element and surface. The returned
// func removes every listener it added.
func (c *Controller) Listen(el, surface Target) (remove func()) {
	removers := []func(){
		el.AddPointerListener(PointerDown, func(p Point) { c.Handle(Down(p)) }),
		surface.AddPointerListener(PointerMove, func(p Point) { c.Handle(Move(p)) }),
		surface.AddPointerListener(PointerUp, func(p Point) { c.Handle(Up(p)) }),
	}
	return func() {
		for _, r := range removers {
			r()
		}
	}
}
