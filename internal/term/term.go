// Package term is the terminal front-end: the rectangle is a block of cells
// dragged with the mouse.
package term

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"DragBoard/internal/config"
	"DragBoard/internal/dom"
	"DragBoard/internal/drag"
	"DragBoard/internal/state"
)

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	rectStyle   = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	activeStyle = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

type App struct {
	screen  tcell.Screen
	rect    *dom.Element
	surface *dom.Element
	view    dom.AttrView
	binder  *drag.Binder
	tracker *state.Tracker
	seed    drag.Point
	cols    int
	rows    int
	log     *zap.Logger

	mouse    mouseState
	cleanup  []func()
	quitting bool
}

// Run opens the terminal screen and blocks until the user quits.
func Run(cfg *config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	a, err := New(context.Background(), screen, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Loop()
}

// New wires an App to an initialised screen.
func New(ctx context.Context, screen tcell.Screen, cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	style, err := cfg.Drag.ParsedStyle()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Drag.Policy()
	if err != nil {
		return nil, err
	}

	a := &App{
		screen:  screen,
		rect:    dom.NewElement("draggableRect"),
		surface: dom.NewElement("svgCanvas"),
		seed:    cfg.Rect.Seed(),
		cols:    max(cfg.Terminal.Cols, 1),
		rows:    max(cfg.Terminal.Rows, 1),
		log:     log,
	}
	a.view = dom.NewAttrView(a.rect)
	a.view.SetPosition(a.seed)

	a.binder = drag.NewBinder(ctx, a.rect, a.surface, a.view, drag.Options{
		Policy: policy,
		Buffer: cfg.Drag.Buffer,
		Logger: log,
	})
	if err := a.binder.Use(style); err != nil {
		return nil, fmt.Errorf("failed to attach %s style: %w", style, err)
	}

	a.tracker = state.NewTracker(policy, log)
	a.cleanup = append(a.cleanup,
		a.tracker.Attach(a.rect, a.surface),
		// Positions written by the stream styles arrive off the event loop.
		a.rect.OnAttrChange(func([]string) { a.wake() }),
	)

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	return a, nil
}

func (a *App) wake() {
	// A full queue already holds a pending redraw.
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Loop polls screen events until quit.
func (a *App) Loop() error {
	a.log.Info("terminal board started", zap.Stringer("style", a.binder.Style()))
	a.draw()
	for !a.quitting {
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		a.Handle(ev)
		a.draw()
	}
	a.log.Info("terminal board closed")
	return nil
}

// Handle processes one screen event.
func (a *App) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	pe := a.mouse.translate(ev)
	switch pe.Kind {
	case drag.PointerDown:
		if a.contains(pe.Point) {
			a.rect.Dispatch(pe)
		}
	default:
		a.surface.Dispatch(pe)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quitting = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r := ev.Rune(); r {
	case 'q':
		a.quitting = true
	case 'r':
		if err := a.binder.Reset(a.seed); err != nil {
			a.log.Error("failed to reset rectangle", zap.Error(err))
		}
	case '1', '2', '3', '4':
		style := drag.Styles()[r-'1']
		if err := a.binder.Use(style); err != nil {
			a.log.Error("failed to switch drag style", zap.Stringer("style", style), zap.Error(err))
		}
	}
}

func (a *App) contains(p drag.Point) bool {
	pos := a.view.Position()
	return p.X >= pos.X && p.X < pos.X+float64(a.cols) &&
		p.Y >= pos.Y && p.Y < pos.Y+float64(a.rows)
}

// cell rounds a position to the cell it falls in. Non-finite positions are
// not drawn.
func cell(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int(math.Floor(v)), true
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a.screen.SetContent(x, y, ' ', nil, boardStyle)
		}
	}

	snap := a.tracker.Snapshot()
	style := rectStyle
	if snap.Phase == drag.Dragging {
		style = activeStyle
	}
	pos := a.view.Position()
	if x0, ok := cell(pos.X); ok {
		if y0, ok := cell(pos.Y); ok {
			for y := y0; y < y0+a.rows; y++ {
				for x := x0; x < x0+a.cols; x++ {
					a.screen.SetContent(x, y, ' ', nil, style)
				}
			}
		}
	}

	status := fmt.Sprintf(" rect %s | %s | %s | 1-4 style  r reset  q quit", pos, a.binder.Style(), snap)
	a.text(0, h-1, status, statusStyle, w)
	a.screen.Show()
}

func (a *App) text(x, y int, s string, style tcell.Style, width int) {
	for _, r := range s {
		if x >= width {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (a *App) Close() {
	for _, c := range a.cleanup {
		c()
	}
	a.cleanup = nil
	if err := a.binder.Close(); err != nil {
		a.log.Error("failed to detach drag style", zap.Error(err))
	}
}
