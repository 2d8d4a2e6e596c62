package dom

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DragBoard/internal/drag"
)

func TestElement_Dispatch(t *testing.T) {
	el := NewElement("svgCanvas")
	var got []string

	removeA := el.AddPointerListener(drag.PointerMove, func(p drag.Point) { got = append(got, "a"+p.String()) })
	var removeB func()
	removeB = el.AddPointerListener(drag.PointerMove, func(p drag.Point) {
		got = append(got, "b"+p.String())
		removeB()
	})
	el.AddPointerListener(drag.PointerUp, func(drag.Point) { got = append(got, "up") })

	el.Dispatch(drag.Move(drag.Pt(1, 2)))
	el.Dispatch(drag.Move(drag.Pt(3, 4)))
	removeA()
	removeA()
	el.Dispatch(drag.Move(drag.Pt(5, 6)))
	el.Dispatch(drag.Up(drag.Pt(0, 0)))

	assert.Equal(t, []string{"a(1, 2)", "b(1, 2)", "a(3, 4)", "up"}, got)
	assert.Zero(t, el.ListenerCount(drag.PointerMove))
}

func TestElement_RemovedDuringDispatchIsSkipped(t *testing.T) {
	el := NewElement("svgCanvas")
	calls := 0

	var removeSecond func()
	el.AddPointerListener(drag.PointerUp, func(drag.Point) { removeSecond() })
	removeSecond = el.AddPointerListener(drag.PointerUp, func(drag.Point) { calls++ })

	el.Dispatch(drag.Up(drag.Pt(0, 0)))
	assert.Zero(t, calls)
}

func TestElement_OnAttrChange(t *testing.T) {
	el := NewElement("draggableRect")
	var changes [][]string
	remove := el.OnAttrChange(func(names []string) { changes = append(changes, names) })

	el.SetAttr("x", "1")
	el.SetAttrs(map[string]string{"y": "3", "x": "2"})
	el.SetAttrs(nil)
	remove()
	el.SetAttr("x", "2")

	assert.Equal(t, [][]string{{"x"}, {"x", "y"}}, changes)
	v, ok := el.Attr("x")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestAttrView(t *testing.T) {
	testCases := []struct {
		name  string
		attrs map[string]string
		x, y  float64
	}{
		{name: "integers", attrs: map[string]string{"x": "10", "y": "20"}, x: 10, y: 20},
		{name: "decimals with spaces", attrs: map[string]string{"x": " 1.25", "y": "-3.5 "}, x: 1.25, y: -3.5},
		{name: "missing", attrs: map[string]string{"x": "4"}, x: 4, y: math.NaN()},
		{name: "garbage", attrs: map[string]string{"x": "ten", "y": ""}, x: math.NaN(), y: math.NaN()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			el := NewElement("draggableRect")
			for k, v := range tc.attrs {
				el.SetAttr(k, v)
			}
			p := NewAttrView(el).Position()
			assertCoord(t, tc.x, p.X)
			assertCoord(t, tc.y, p.Y)
		})
	}
}

func TestAttrView_SetPosition(t *testing.T) {
	el := NewElement("draggableRect")
	NewAttrView(el).SetPosition(drag.Pt(30, -0.5))

	x, _ := el.Attr(AttrX)
	y, _ := el.Attr(AttrY)
	assert.Equal(t, "30", x)
	assert.Equal(t, "-0.5", y)
	assert.Equal(t, 30.0, Number(el, AttrX))
}

func TestAttrView_PositionIsNeverTorn(t *testing.T) {
	el := NewElement("draggableRect")
	view := NewAttrView(el)
	view.SetPosition(drag.Pt(0, 0))

	var (
		wg      sync.WaitGroup
		hookErr = make(chan drag.Point, 1)
	)
	remove := el.OnAttrChange(func([]string) {
		if p := view.Position(); p.X != p.Y {
			select {
			case hookErr <- p:
			default:
			}
		}
	})
	defer remove()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 2000; i++ {
			view.SetPosition(drag.Pt(float64(i), float64(i)))
		}
	}()

	for i := 0; i < 2000; i++ {
		p := view.Position()
		require.Equal(t, p.X, p.Y, "read %d saw a half-written position", i)
	}
	wg.Wait()

	select {
	case p := <-hookErr:
		t.Fatalf("hook saw a half-written position %v", p)
	default:
	}
	assert.Equal(t, drag.Pt(2000, 2000), view.Position())
}

func assertCoord(t *testing.T, expected, actual float64) {
	t.Helper()
	if math.IsNaN(expected) {
		assert.True(t, math.IsNaN(actual), "expected NaN, got %v", actual)
		return
	}
	assert.Equal(t, expected, actual)
}
