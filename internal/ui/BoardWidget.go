package ui

import (
	"image/color"
	"slices"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"DragBoard/internal/dom"
	"DragBoard/internal/drag"
)

const (
	RectElementID    = "draggableRect"
	SurfaceElementID = "svgCanvas"
)

var (
	defaultFill = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	activeFill  = color.NRGBA{R: 251, G: 188, B: 5, A: 255}
)

// BoardWidget is the drawing surface. It owns two elements: Rect, whose x
// and y attributes place the rectangle, and Surface, which stands for the
// whole board. Fyne mouse events are re-dispatched to them as pointer events
// so any drag style can be attached.
type BoardWidget struct {
	widget.BaseWidget
	Rect    *dom.Element
	Surface *dom.Element

	mu       sync.RWMutex
	rectSize fyne.Size
	fill     color.Color
	active   bool
	pointer  fyne.Position
	onActive []func(bool)

	log        *zap.Logger
	removeHook func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(rectSize fyne.Size, log *zap.Logger) *BoardWidget {
	if log == nil {
		log = zap.NewNop()
	}
	b := &BoardWidget{
		Rect:     dom.NewElement(RectElementID),
		Surface:  dom.NewElement(SurfaceElementID),
		rectSize: rectSize,
		fill:     defaultFill,
		log:      log,
	}
	b.ExtendBaseWidget(b)

	// Pipelines write attributes from their own goroutines.
	b.removeHook = b.Rect.OnAttrChange(func(names []string) {
		if slices.Contains(names, dom.AttrX) || slices.Contains(names, dom.AttrY) {
			fyne.Do(b.Refresh)
		}
	})
	return b
}

// Position is the rectangle's placement as read from its attributes.
func (b *BoardWidget) Position() drag.Point {
	return dom.NewAttrView(b.Rect).Position()
}

func (b *BoardWidget) SetColor(c color.Color) {
	b.mu.Lock()
	b.fill = c
	b.mu.Unlock()
	b.Refresh()
}

// Fill is the resting colour of the rectangle, shown while no drag is open.
func (b *BoardWidget) Fill() color.Color {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fill
}

// SetActive highlights the rectangle while a drag session is open.
func (b *BoardWidget) SetActive(active bool) {
	b.mu.Lock()
	changed := b.active != active
	b.active = active
	hooks := slices.Clone(b.onActive)
	b.mu.Unlock()
	if !changed {
		return
	}
	b.Refresh()
	for _, fn := range hooks {
		fn(active)
	}
}

// OnActiveChange registers fn to run whenever SetActive flips the highlight.
func (b *BoardWidget) OnActiveChange(fn func(active bool)) {
	b.mu.Lock()
	b.onActive = append(b.onActive, fn)
	b.mu.Unlock()
}

func (b *BoardWidget) fillColor() color.Color {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.active {
		return activeFill
	}
	return b.fill
}

func (b *BoardWidget) contains(p drag.Point) bool {
	pos := b.Position()
	b.mu.RLock()
	size := b.rectSize
	b.mu.RUnlock()
	return p.X >= pos.X && p.X <= pos.X+float64(size.Width) &&
		p.Y >= pos.Y && p.Y <= pos.Y+float64(size.Height)
}

func (b *BoardWidget) track(pos fyne.Position) drag.Point {
	b.mu.Lock()
	b.pointer = pos
	b.mu.Unlock()
	return toPoint(pos)
}

func toPoint(pos fyne.Position) drag.Point {
	return drag.Pt(float64(pos.X), float64(pos.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := b.track(e.Position)
	if !b.contains(p) {
		b.log.Debug("pointer down outside rectangle", zap.Stringer("pointer", p))
		return
	}
	b.Rect.Dispatch(drag.Down(p))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Surface.Dispatch(drag.Up(b.track(e.Position)))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.Surface.Dispatch(drag.Move(b.track(e.Position)))
}

// DragEnd carries no position; the last one seen is used.
func (b *BoardWidget) DragEnd() {
	b.mu.RLock()
	pos := b.pointer
	b.mu.RUnlock()
	b.Surface.Dispatch(drag.Up(toPoint(pos)))
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.Surface.Dispatch(drag.Move(b.track(e.Position)))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

// Close detaches the widget from its rectangle element.
func (b *BoardWidget) Close() {
	if b.removeHook != nil {
		b.removeHook()
		b.removeHook = nil
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rect = canvas.NewRectangle(b.fillColor())
	r.rect.StrokeColor = color.Gray{Y: 90}
	r.rect.StrokeWidth = 1
	r.objects = []fyne.CanvasObject{r.background, r.rect}
	r.place()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	rect       *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) place() {
	p := r.board.Position()
	r.board.mu.RLock()
	size := r.board.rectSize
	r.board.mu.RUnlock()
	r.rect.Move(fyne.NewPos(float32(p.X), float32(p.Y)))
	r.rect.Resize(size)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rect.FillColor = r.board.fillColor()
	r.place()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.place()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
