// package window defines the capability contract between window backends
// and window consumers: a settings value to build from, a basic window
// surface and an advanced extension of it.
package window

import (
	"time"

	"github.com/mzki/fakedpi/input"
)

//go:generate mockgen -destination=./mock/mock_window.go . Window,AdvancedWindow

// Size is a window size. Units depend on context: backends report
// physical pixels, decorators may convert to logical units.
type Size struct {
	Width, Height float64
}

// Position is a window position in screen coordinates.
type Position struct {
	X, Y int
}

// Settings describes a window to be created.
// It is a value type so that callers can copy and modify it freely
// before building.
type Settings struct {
	Title          string
	Width, Height  float64
	Resizable      bool
	ExitOnEsc      bool
	AutomaticClose bool
}

// Builder builds a concrete window from settings, typically bound to
// some backend state such as a display connection.
// It returns CreationError when the underlying build fails.
type Builder[W Window] func(Settings) (W, error)

// Window is the basic window surface.
//
// Event retrieval returns the event with an optional timestamp; the zero
// time.Time means the backend attached no timestamp. WaitEventTimeout and
// PollEvent report ok=false on timeout and empty queue respectively, with
// a nil event.
type Window interface {
	// set whether window should close after the current event cycle.
	SetShouldClose(should bool)
	// report whether window was requested to close.
	ShouldClose() bool
	// window size as reported by the backend, in physical pixels.
	Size() Size
	// framebuffer size in physical pixels.
	DrawSize() Size
	// present the back buffer.
	SwapBuffers()

	// block until the next event arrives.
	WaitEvent() (input.Event, time.Time)
	// block until the next event arrives or the timeout elapses.
	WaitEventTimeout(timeout time.Duration) (input.Event, time.Time, bool)
	// return the next event without blocking.
	PollEvent() (input.Event, time.Time, bool)
}

// AdvancedWindow extends Window with operations not every backend
// supports. Position reports ok=false when the backend cannot tell
// the window position.
type AdvancedWindow interface {
	Window

	Title() string
	SetTitle(title string)
	ExitOnEsc() bool
	SetExitOnEsc(value bool)
	AutomaticClose() bool
	SetAutomaticClose(value bool)
	SetCaptureCursor(value bool)
	Show()
	Hide()
	Position() (Position, bool)
	SetPosition(pos Position)
	SetSize(size Size)
}

// CreationError reports that the backend failed to create a window.
// It is the only error kind surfaced by window construction; the
// backend cause is kept as-is and reachable via Unwrap.
type CreationError struct {
	Err error
}

func (e *CreationError) Error() string {
	return "window: creation failed: " + e.Err.Error()
}

func (e *CreationError) Unwrap() error { return e.Err }
