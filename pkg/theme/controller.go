package theme

// Controller owns the current brightness and notifies subscribers when it
// changes. Subscribers recompute their styles on notification; there is no
// other data dependency between the controller and the style math.
//
// Controller is not safe for concurrent use; like the rest of the module
// it assumes a single event-driven caller.
type Controller struct {
	brightness Brightness

	// Optional per-brightness palette overrides. Nil means default.
	light *Palette
	dark  *Palette

	listeners      map[int]func()
	nextListenerID int
}

// NewController creates a controller starting at the given brightness.
func NewController(b Brightness) *Controller {
	return &Controller{
		brightness: b,
		listeners:  make(map[int]func()),
	}
}

// Brightness returns the current brightness.
func (c *Controller) Brightness() Brightness {
	return c.brightness
}

// Palette returns the active palette for the current brightness.
func (c *Controller) Palette() Palette {
	if c.brightness == BrightnessDark && c.dark != nil {
		return *c.dark
	}
	if c.brightness == BrightnessLight && c.light != nil {
		return *c.light
	}
	return PaletteFor(c.brightness)
}

// SetBrightness switches the theme and notifies listeners. Setting the
// current brightness again is a no-op.
func (c *Controller) SetBrightness(b Brightness) {
	if c.brightness == b {
		return
	}
	c.brightness = b
	c.notifyListeners()
}

// Toggle flips between light and dark.
func (c *Controller) Toggle() {
	if c.brightness == BrightnessDark {
		c.SetBrightness(BrightnessLight)
	} else {
		c.SetBrightness(BrightnessDark)
	}
}

// SetPalette overrides the palette used for the given brightness and
// notifies listeners when the override affects the active theme.
func (c *Controller) SetPalette(b Brightness, p Palette) {
	if b == BrightnessDark {
		c.dark = &p
	} else {
		c.light = &p
	}
	if b == c.brightness {
		c.notifyListeners()
	}
}

// AddListener adds a callback that fires whenever the active theme changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
