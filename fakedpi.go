// package fakedpi wraps a window to simulate a Hi-DPI screen by
// manipulating window geometry and input events.
//
// The wrapped window is created at Dpi times the requested size, while
// sizes and pointer coordinates reported to the caller are converted
// back to logical units. It is used to test density-aware application
// logic on computers without real Hi-DPI screens.
package fakedpi

import (
	"time"

	"github.com/mzki/fakedpi/input"
	"github.com/mzki/fakedpi/window"
)

// DefaultDpi is the DPI factor set by Build.
const DefaultDpi = 2.0

// Window wraps an inner window to simulate a Hi-DPI screen.
// It implements window.Window over the inner one: geometry reported to
// the caller is in logical units, the OS window stays at physical size.
type Window[W window.Window] struct {
	// Inner is the wrapped window.
	Inner W

	// Dpi controls the simulated DPI factor.
	//
	// This can be changed at run-time to test application logic;
	// geometry queries recompute from it on every call. It must stay
	// positive, no validation is applied. By default this is set to 2.0.
	Dpi float64
}

var _ window.Window = (*Window[window.Window])(nil)

// Build creates the underlying window at DefaultDpi times the size
// declared in settings and returns it wrapped.
// A build failure is returned as-is, with no window created.
func Build[W window.Window](settings window.Settings, build window.Builder[W]) (*Window[W], error) {
	dpi := float64(DefaultDpi)
	settings.Width *= dpi
	settings.Height *= dpi
	inner, err := build(settings)
	if err != nil {
		return nil, err
	}
	return &Window[W]{Inner: inner, Dpi: dpi}, nil
}

func (w *Window[W]) SetShouldClose(should bool) { w.Inner.SetShouldClose(should) }
func (w *Window[W]) ShouldClose() bool          { return w.Inner.ShouldClose() }
func (w *Window[W]) SwapBuffers()               { w.Inner.SwapBuffers() }

// DrawSize reports the framebuffer size in physical pixels, unconverted.
// Rendering code needs true pixel counts.
func (w *Window[W]) DrawSize() window.Size { return w.Inner.DrawSize() }

// Size reports the window size in logical units, that is the inner
// window's physical size divided by Dpi.
func (w *Window[W]) Size() window.Size {
	size := w.Inner.Size()
	return window.Size{Width: size.Width / w.Dpi, Height: size.Height / w.Dpi}
}

func (w *Window[W]) WaitEvent() (input.Event, time.Time) {
	e, t := w.Inner.WaitEvent()
	return ScaleEvent(w.Dpi, e), t
}

func (w *Window[W]) WaitEventTimeout(timeout time.Duration) (input.Event, time.Time, bool) {
	e, t, ok := w.Inner.WaitEventTimeout(timeout)
	if !ok {
		return nil, time.Time{}, false
	}
	return ScaleEvent(w.Dpi, e), t, true
}

func (w *Window[W]) PollEvent() (input.Event, time.Time, bool) {
	e, t, ok := w.Inner.PollEvent()
	if !ok {
		return nil, time.Time{}, false
	}
	return ScaleEvent(w.Dpi, e), t, true
}

// AdvancedWindow is Window for inner windows that also offer the
// advanced surface. The extra operations are forwarded untouched.
//
// Note that SetSize forwards its argument unscaled while Size divides
// by Dpi. Callers changing the window size through SetSize therefore
// pass physical units.
type AdvancedWindow[W window.AdvancedWindow] struct {
	Window[W]
}

var _ window.AdvancedWindow = (*AdvancedWindow[window.AdvancedWindow])(nil)

// BuildAdvanced is Build for inner windows offering the advanced surface.
func BuildAdvanced[W window.AdvancedWindow](settings window.Settings, build window.Builder[W]) (*AdvancedWindow[W], error) {
	w, err := Build(settings, build)
	if err != nil {
		return nil, err
	}
	return &AdvancedWindow[W]{Window: *w}, nil
}

func (w *AdvancedWindow[W]) Title() string                  { return w.Inner.Title() }
func (w *AdvancedWindow[W]) SetTitle(title string)          { w.Inner.SetTitle(title) }
func (w *AdvancedWindow[W]) ExitOnEsc() bool                { return w.Inner.ExitOnEsc() }
func (w *AdvancedWindow[W]) SetExitOnEsc(value bool)        { w.Inner.SetExitOnEsc(value) }
func (w *AdvancedWindow[W]) AutomaticClose() bool           { return w.Inner.AutomaticClose() }
func (w *AdvancedWindow[W]) SetAutomaticClose(value bool)   { w.Inner.SetAutomaticClose(value) }
func (w *AdvancedWindow[W]) SetCaptureCursor(value bool)    { w.Inner.SetCaptureCursor(value) }
func (w *AdvancedWindow[W]) Show()                          { w.Inner.Show() }
func (w *AdvancedWindow[W]) Hide()                          { w.Inner.Hide() }
func (w *AdvancedWindow[W]) Position() (window.Position, bool) { return w.Inner.Position() }
func (w *AdvancedWindow[W]) SetPosition(pos window.Position)   { w.Inner.SetPosition(pos) }
func (w *AdvancedWindow[W]) SetSize(size window.Size)          { w.Inner.SetSize(size) }
