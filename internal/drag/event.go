package drag

// Kind tags a PositionEvent.
type Kind uint8

const (
	KindStart Kind = iota + 1
	KindMove
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "DragStart"
	case KindMove:
		return "DragMove"
	}
	return "Unknown"
}

// PositionEvent is the input of Reduce: either DragStart(p) or DragMove(p).
type PositionEvent struct {
	Kind  Kind
	Point Point
}

// DragStart reports that the pointer went down on the element at p.
func DragStart(p Point) PositionEvent {
	return PositionEvent{Kind: KindStart, Point: p}
}

// DragMove reports that the pointer moved to p during an active session.
func DragMove(p Point) PositionEvent {
	return PositionEvent{Kind: KindMove, Point: p}
}

// PointerKind identifies a raw pointer event delivered by the host.
type PointerKind uint8

const (
	PointerDown PointerKind = iota + 1
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	}
	return "unknown"
}

// PointerEvent is a raw pointer event carrying its coordinates.
type PointerEvent struct {
	Kind  PointerKind
	Point Point
}

func Down(p Point) PointerEvent { return PointerEvent{Kind: PointerDown, Point: p} }
func Move(p Point) PointerEvent { return PointerEvent{Kind: PointerMove, Point: p} }
func Up(p Point) PointerEvent   { return PointerEvent{Kind: PointerUp, Point: p} }
