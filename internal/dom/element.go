// Package dom models the small part of a host document the drag needs: an
// element with string attributes that pointer listeners can be added to.
package dom

import (
	"slices"
	"sync"
	"sync/atomic"

	"DragBoard/internal/drag"
)

type listener struct {
	fn      func(drag.Point)
	removed atomic.Bool
}

type attrHook struct {
	fn func(names []string)
}

// Element is safe for concurrent use. Listeners and attribute hooks run on
// the goroutine that triggered them, outside the element's lock.
type Element struct {
	id string

	mu        sync.RWMutex
	attrs     map[string]string
	listeners map[drag.PointerKind][]*listener
	hooks     []*attrHook
}

var _ drag.Target = (*Element)(nil)

func NewElement(id string) *Element {
	return &Element{
		id:        id,
		attrs:     make(map[string]string),
		listeners: make(map[drag.PointerKind][]*listener),
	}
}

func (e *Element) ID() string { return e.id }

func (e *Element) Attr(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.attrs[name]
	return v, ok
}

// Attrs reads several attributes under one lock, so they come from the same
// write. ok[i] reports whether names[i] is set.
func (e *Element) Attrs(names ...string) (values []string, ok []bool) {
	values = make([]string, len(names))
	ok = make([]bool, len(names))
	e.mu.RLock()
	defer e.mu.RUnlock()
	for i, name := range names {
		values[i], ok[i] = e.attrs[name]
	}
	return values, ok
}

func (e *Element) SetAttr(name, value string) {
	e.SetAttrs(map[string]string{name: value})
}

// SetAttrs writes every attribute in attrs under one lock and then runs the
// change hooks once with the sorted attribute names.
func (e *Element) SetAttrs(attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	names := make([]string, 0, len(attrs))
	e.mu.Lock()
	for name, value := range attrs {
		e.attrs[name] = value
		names = append(names, name)
	}
	hooks := slices.Clone(e.hooks)
	e.mu.Unlock()

	slices.Sort(names)
	for _, h := range hooks {
		h.fn(names)
	}
}

func (e *Element) RemoveAttr(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.attrs, name)
}

// OnAttrChange registers fn to run after every SetAttr or SetAttrs with the
// names that were written.
func (e *Element) OnAttrChange(fn func(names []string)) (remove func()) {
	h := &attrHook{fn: fn}
	e.mu.Lock()
	e.hooks = append(e.hooks, h)
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, existing := range e.hooks {
			if existing == h {
				e.hooks = append(e.hooks[:i], e.hooks[i+1:]...)
				return
			}
		}
	}
}

func (e *Element) AddPointerListener(kind drag.PointerKind, fn func(drag.Point)) (remove func()) {
	l := &listener{fn: fn}
	e.mu.Lock()
	e.listeners[kind] = append(e.listeners[kind], l)
	e.mu.Unlock()

	return func() {
		if l.removed.Swap(true) {
			return
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		ls := e.listeners[kind]
		for i, existing := range ls {
			if existing == l {
				e.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount reports how many listeners of kind are registered.
func (e *Element) ListenerCount(kind drag.PointerKind) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[kind])
}

// Dispatch delivers ev to the listeners registered for its kind, in
// registration order. A listener removed by an earlier listener during the
// same dispatch is skipped; one added during it is not called.
func (e *Element) Dispatch(ev drag.PointerEvent) {
	e.mu.RLock()
	ls := make([]*listener, len(e.listeners[ev.Kind]))
	copy(ls, e.listeners[ev.Kind])
	e.mu.RUnlock()

	for _, l := range ls {
		if l.removed.Load() {
			continue
		}
		l.fn(ev.Point)
	}
}
