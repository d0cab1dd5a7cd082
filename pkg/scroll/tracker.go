package scroll

import "github.com/neu-ui/neu/pkg/graphics"

// Tracker follows one element through scroll updates and exposes its
// current progress. Each element owns an independent Tracker; instances
// share no state, and updates are expected on a single event goroutine.
//
// The host view feeds geometry in via SetBounds (on layout) and
// SetViewport (on every scroll event). The most recent update wins; no
// queuing or coalescing happens here.
type Tracker struct {
	bounds   graphics.Rect
	viewport Viewport
	progress float64

	listeners      map[int]func()
	nextListenerID int
}

// NewTracker creates a tracker for an element with the given bounds.
func NewTracker(bounds graphics.Rect) *Tracker {
	return &Tracker{
		bounds:    bounds,
		listeners: make(map[int]func()),
	}
}

// Progress returns the element's current scroll progress in [0, 1].
func (t *Tracker) Progress() float64 {
	return t.progress
}

// Bounds returns the element bounds last supplied by the host.
func (t *Tracker) Bounds() graphics.Rect {
	return t.bounds
}

// SetBounds updates the element geometry and recomputes progress.
func (t *Tracker) SetBounds(bounds graphics.Rect) {
	t.bounds = bounds
	t.recompute()
}

// SetViewport updates the scroll state and recomputes progress.
func (t *Tracker) SetViewport(vp Viewport) {
	t.viewport = vp
	t.recompute()
}

// AddListener adds a callback that fires whenever progress changes.
// Returns an unsubscribe function; call it on unmount so a discarded
// view stops receiving scroll updates.
func (t *Tracker) AddListener(fn func()) func() {
	id := t.nextListenerID
	t.nextListenerID++
	t.listeners[id] = fn
	return func() {
		delete(t.listeners, id)
	}
}

func (t *Tracker) recompute() {
	next := ProgressForRect(t.bounds, t.viewport)
	if next == t.progress {
		return
	}
	t.progress = next
	for _, listener := range t.listeners {
		listener()
	}
}
