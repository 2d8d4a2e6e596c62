package drag

// View is the handle the drag logic reads its seed from and writes every
// produced position to. Implementations used with the stream styles must
// be safe for use from another goroutine.
type View interface {
	Position() Point
	SetPosition(Point)
}

// Target accepts pointer listeners of one kind. The returned func removes
// the listener; calling it more than once is allowed.
type Target interface {
	AddPointerListener(kind PointerKind, fn func(Point)) (remove func())
}
