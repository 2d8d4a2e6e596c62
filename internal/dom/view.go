package dom

import (
	"math"
	"strconv"
	"strings"

	"DragBoard/internal/drag"
)

const (
	AttrX = "x"
	AttrY = "y"
)

// AttrView is the drag.View over an element's x and y attributes.
// Positions are written as decimal strings. A missing or unparsable
// attribute reads back as NaN.
type AttrView struct {
	el *Element
}

var _ drag.View = AttrView{}

func NewAttrView(el *Element) AttrView {
	return AttrView{el: el}
}

// Position reads x and y together, so it never mixes two writes.
func (v AttrView) Position() drag.Point {
	values, ok := v.el.Attrs(AttrX, AttrY)
	return drag.Pt(parseNumber(values[0], ok[0]), parseNumber(values[1], ok[1]))
}

func (v AttrView) SetPosition(p drag.Point) {
	v.el.SetAttrs(map[string]string{
		AttrX: drag.FormatCoord(p.X),
		AttrY: drag.FormatCoord(p.Y),
	})
}

func parseNumber(s string, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Number reads a numeric attribute the way AttrView does.
func Number(el *Element, name string) float64 {
	return parseNumber(el.Attr(name))
}
