package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"DragBoard/internal/drag"
)

var (
	paletteFills = []color.Color{
		defaultFill,
		color.NRGBA{R: 219, G: 68, B: 55, A: 255}, // Red
		color.NRGBA{R: 15, G: 157, B: 88, A: 255}, // Green
		color.Black,
	}
	swatchEdge = color.Gray{Y: 150}
)

// swatch offers one resting fill for the rectangle. The selected swatch is
// the board's current fill and is outlined, in activeFill while a drag is
// open since that is what the rectangle shows then.
type swatch struct {
	widget.BaseWidget
	fill     color.Color
	onTapped func(*swatch)

	mu       sync.RWMutex
	selected bool
	active   bool
}

var _ fyne.Tappable = (*swatch)(nil)

func newSwatch(fill color.Color, tapped func(*swatch)) *swatch {
	s := &swatch{fill: fill, onTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swatch) Selected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *swatch) SetSelected(selected bool) {
	s.mu.Lock()
	changed := s.selected != selected
	s.selected = selected
	s.mu.Unlock()
	if changed {
		s.Refresh()
	}
}

func (s *swatch) setActive(active bool) {
	s.mu.Lock()
	s.active = active
	selected := s.selected
	s.mu.Unlock()
	if selected {
		s.Refresh()
	}
}

// outline is the border the swatch draws for its current state.
func (s *swatch) outline() (color.Color, float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.selected && s.active:
		return activeFill, 3
	case s.selected:
		return color.Black, 3
	}
	return swatchEdge, 1
}

func (s *swatch) Tapped(*fyne.PointEvent) {
	if s.onTapped != nil {
		s.onTapped(s)
	}
}

func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	r := &swatchRenderer{swatch: s}
	r.fill = canvas.NewRectangle(s.fill)
	r.border = canvas.NewRectangle(color.Transparent)
	r.objects = []fyne.CanvasObject{r.fill, r.border}
	r.Refresh()
	return r
}

type swatchRenderer struct {
	swatch  *swatch
	fill    *canvas.Rectangle
	border  *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	for _, o := range r.objects {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}
}

func (r *swatchRenderer) MinSize() fyne.Size { return fyne.NewSize(24, 24) }

func (r *swatchRenderer) Refresh() {
	r.border.StrokeColor, r.border.StrokeWidth = r.swatch.outline()
	r.border.Refresh()
	r.fill.Refresh()
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *swatchRenderer) Destroy()                     {}

// palette keeps exactly one swatch selected, the one matching the board's
// fill, and mirrors the board's drag highlight onto it.
type palette struct {
	board    *BoardWidget
	swatches []*swatch
}

func newPalette(board *BoardWidget, fills ...color.Color) *palette {
	p := &palette{board: board}
	current := board.Fill()
	for _, fill := range fills {
		sw := newSwatch(fill, p.pick)
		sw.selected = fill == current
		p.swatches = append(p.swatches, sw)
	}
	board.OnActiveChange(p.setActive)
	return p
}

func (p *palette) pick(picked *swatch) {
	for _, sw := range p.swatches {
		sw.SetSelected(sw == picked)
	}
	p.board.SetColor(picked.fill)
}

func (p *palette) setActive(active bool) {
	for _, sw := range p.swatches {
		sw.setActive(active)
	}
}

func (p *palette) object() fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(p.swatches))
	for i, sw := range p.swatches {
		objects[i] = sw
	}
	return container.NewHBox(objects...)
}

func styleNames() []string {
	names := make([]string, 0, len(drag.Styles()))
	for _, s := range drag.Styles() {
		names = append(names, s.String())
	}
	return names
}

// NewToolbar builds the style picker, the rectangle palette and the reset
// action.
func NewToolbar(board *BoardWidget, binder *drag.Binder, onReset func(), log *zap.Logger) fyne.CanvasObject {
	styles := widget.NewRadioGroup(styleNames(), nil)
	styles.Horizontal = true
	styles.Required = true
	styles.SetSelected(binder.Style().String())
	styles.OnChanged = func(name string) {
		style, err := drag.ParseStyle(name)
		if err != nil {
			log.Warn("ignoring style selection", zap.Error(err))
			return
		}
		if err := binder.Use(style); err != nil {
			log.Error("failed to switch drag style", zap.Stringer("style", style), zap.Error(err))
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), onReset), // Reset
	)

	colors := newPalette(board, paletteFills...)

	return container.NewHBox(
		widget.NewLabel("Style:"),
		styles,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colors.object(),
		widget.NewSeparator(),
		tb,
		layout.NewSpacer(),
	)
}
