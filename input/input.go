// package input defines the closed set of input events delivered by a window.
package input

// Event is a single input event delivered by a window.
// The variant set is closed: consumers dispatch over the concrete types
// below and are expected to handle every one of them, so that adding a
// new variant forces an explicit decision at each dispatch site.
type Event interface {
	isInputEvent()
}

// Focus reports the window gaining or losing input focus.
type Focus struct {
	Focused bool
}

// Cursor reports the mouse cursor entering or leaving the window.
type Cursor struct {
	Inside bool
}

// MouseCursor is an absolute mouse position in window coordinates.
type MouseCursor struct {
	X, Y float64
}

// MouseRelative is a relative mouse motion delta.
type MouseRelative struct {
	DX, DY float64
}

// MouseScroll is a scroll wheel delta.
type MouseScroll struct {
	DX, DY float64
}

// Touch is a touch motion. Coordinates are device-relative and
// not density-dependent.
type Touch struct {
	ID       int64
	X, Y     float64
	Pressure float64
}

// ControllerAxis is a game controller axis motion.
// Position is the normalized axis value, typically in [-1, 1].
type ControllerAxis struct {
	Device   int32
	Axis     int32
	Position float64
}

type ButtonState int8

const (
	Press ButtonState = iota
	Release
)

type ButtonSource int8

const (
	Keyboard ButtonSource = iota
	Mouse
	Controller
)

// Button is a key or button press/release.
// Code is the device-specific key code or button number.
type Button struct {
	State  ButtonState
	Source ButtonSource
	Code   int32
}

// Text is text input, already composed by the platform.
type Text struct {
	Text string
}

type FileDragState int8

const (
	FileHover FileDragState = iota
	FileDrop
	FileCancel
)

// FileDrag reports a file being dragged over, dropped on, or
// dragged away from the window.
type FileDrag struct {
	State FileDragState
	Path  string
}

// Resize reports a window size change.
// DrawWidth and DrawHeight are the framebuffer size in physical pixels,
// Width and Height are the window size.
type Resize struct {
	DrawWidth, DrawHeight int
	Width, Height         float64
}

// Close is a window close request.
type Close struct{}

func (Focus) isInputEvent()          {}
func (Cursor) isInputEvent()         {}
func (MouseCursor) isInputEvent()    {}
func (MouseRelative) isInputEvent()  {}
func (MouseScroll) isInputEvent()    {}
func (Touch) isInputEvent()          {}
func (ControllerAxis) isInputEvent() {}
func (Button) isInputEvent()         {}
func (Text) isInputEvent()           {}
func (FileDrag) isInputEvent()       {}
func (Resize) isInputEvent()         {}
func (Close) isInputEvent()          {}
