package interaction

import (
	"sync"
	"time"
)

// DefaultRevealDelay is how long content stays hidden after its surface
// becomes visible.
const DefaultRevealDelay = 500 * time.Millisecond

// Reveal gates a surface's inner content behind a delay: when the
// surface becomes visible, ContentVisible flips to true only after the
// configured delay has elapsed without the visibility flipping back.
//
// Hiding the surface cancels any pending timer, so a false→true→false
// sequence inside the delay window never shows content. Dispose cancels
// the timer on teardown for the same reason.
//
// The timer callback runs off the caller's goroutine, so Reveal guards
// its fields with a mutex; listeners are invoked from whichever
// goroutine changed the state.
type Reveal struct {
	mu             sync.Mutex
	delay          time.Duration
	visible        bool
	contentVisible bool
	timer          *time.Timer
	generation     uint64

	listeners      map[int]func()
	nextListenerID int
}

// NewReveal creates a reveal gate. A non-positive delay uses
// DefaultRevealDelay.
func NewReveal(delay time.Duration) *Reveal {
	if delay <= 0 {
		delay = DefaultRevealDelay
	}
	return &Reveal{
		delay:     delay,
		listeners: make(map[int]func()),
	}
}

// Visible returns the surface visibility flag.
func (r *Reveal) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

// ContentVisible reports whether the delayed content fade-in has fired.
func (r *Reveal) ContentVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contentVisible
}

// SetVisible updates the surface visibility. Becoming visible arms the
// reveal timer; becoming hidden cancels it and hides content immediately.
func (r *Reveal) SetVisible(visible bool) {
	r.mu.Lock()
	if r.visible == visible {
		r.mu.Unlock()
		return
	}
	r.visible = visible
	r.cancelTimerLocked()

	if !visible {
		changed := r.contentVisible
		r.contentVisible = false
		r.mu.Unlock()
		if changed {
			r.notifyListeners()
		}
		return
	}

	// The generation stamp invalidates a timer that fires after it was
	// superseded but before Stop took effect.
	r.generation++
	gen := r.generation
	r.timer = time.AfterFunc(r.delay, func() {
		r.fire(gen)
	})
	r.mu.Unlock()
}

func (r *Reveal) fire(gen uint64) {
	r.mu.Lock()
	if gen != r.generation || !r.visible || r.contentVisible {
		r.mu.Unlock()
		return
	}
	r.contentVisible = true
	r.timer = nil
	r.mu.Unlock()
	r.notifyListeners()
}

// AddListener adds a callback that fires when ContentVisible changes.
// Returns an unsubscribe function.
func (r *Reveal) AddListener(fn func()) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextListenerID
	r.nextListenerID++
	r.listeners[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// Dispose cancels any pending timer. Safe to call more than once.
func (r *Reveal) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	r.cancelTimerLocked()
}

func (r *Reveal) cancelTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Reveal) notifyListeners() {
	r.mu.Lock()
	fns := make([]func(), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	r.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
