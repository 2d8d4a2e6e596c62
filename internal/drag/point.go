package drag

import "strconv"

// Point is an immutable pair of coordinates. Two points are the same point
// when their coordinates are equal.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return "(" + FormatCoord(p.X) + ", " + FormatCoord(p.Y) + ")"
}

// FormatCoord renders a coordinate as the shortest decimal string that
// parses back to the same value. NaN renders as "NaN".
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
