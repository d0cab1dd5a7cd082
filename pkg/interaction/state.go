// Package interaction tracks the pointer-driven booleans a surface style
// depends on (pressed, hovered, visible) and the delayed content-reveal
// gate that follows a visibility change.
package interaction

// State holds the interaction flags of one surface. The owning view
// mutates it from pointer/touch events and reads it back when computing
// styles; it resets to the zero value on unmount.
type State struct {
	Pressed bool
	Hovered bool
	Visible bool
}

// PressDown marks the surface pressed.
func (s *State) PressDown() { s.Pressed = true }

// PressUp releases a press.
func (s *State) PressUp() { s.Pressed = false }

// PressCancel releases a press when the pointer leaves the surface
// mid-press.
func (s *State) PressCancel() { s.Pressed = false }

// TouchStart mirrors PressDown for touch input.
func (s *State) TouchStart() { s.Pressed = true }

// TouchEnd mirrors PressUp for touch input.
func (s *State) TouchEnd() { s.Pressed = false }

// HoverEnter marks the surface hovered.
func (s *State) HoverEnter() { s.Hovered = true }

// HoverLeave clears the hover flag.
func (s *State) HoverLeave() { s.Hovered = false }
