// package shinywindow provides a window.Window backed by the shiny
// screen driver. It is the reference backend to wrap with fakedpi.
package shinywindow

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
	"time"

	"golang.org/x/exp/shiny/screen"

	"github.com/mzki/fakedpi/input"
	"github.com/mzki/fakedpi/window"
)

// events handed over from the pump goroutine to the retrieval calls.
// small buffer only, the pump blocks when the consumer lags.
const eventBufferSize = 16

type queuedEvent struct {
	event input.Event
	time  time.Time
}

// Window implements window.Window over a shiny screen.Window.
// The advanced surface is not offered since shiny exposes no title,
// position or visibility operations after creation.
type Window struct {
	w  screen.Window
	ch chan queuedEvent

	mu          sync.Mutex
	shouldClose bool
	size        window.Size
	drawSize    window.Size
}

var _ window.Window = (*Window)(nil)

// New builds an OS window from settings on the given shiny screen.
// Must be called inside driver.Main.
func New(s screen.Screen, settings window.Settings) (*Window, error) {
	sw, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  int(settings.Width),
		Height: int(settings.Height),
		Title:  settings.Title,
	})
	if err != nil {
		return nil, &window.CreationError{Err: err}
	}
	w := &Window{
		w:        sw,
		ch:       make(chan queuedEvent, eventBufferSize),
		size:     window.Size{Width: settings.Width, Height: settings.Height},
		drawSize: window.Size{Width: settings.Width, Height: settings.Height},
	}
	go w.pump()
	return w, nil
}

// Builder returns a window.Builder bound to the shiny screen s,
// for use with fakedpi.Build.
func Builder(s screen.Screen) window.Builder[*Window] {
	return func(settings window.Settings) (*Window, error) {
		return New(s, settings)
	}
}

// pump reads shiny events, tracks window geometry and feeds translated
// input events to the retrieval calls. It ends when the window reaches
// the dead stage.
func (w *Window) pump() {
	for {
		e := w.w.NextEvent()

		if winSize, drawSize, ok := geometryOf(e); ok {
			w.mu.Lock()
			w.size = winSize
			w.drawSize = drawSize
			w.mu.Unlock()
		}
		dead := isDead(e)
		if dead {
			w.mu.Lock()
			w.shouldClose = true
			w.mu.Unlock()
		}

		now := time.Now()
		for _, ev := range convert(e) {
			w.ch <- queuedEvent{event: ev, time: now}
		}
		if dead {
			return
		}
	}
}

func (w *Window) SetShouldClose(should bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shouldClose = should
}

func (w *Window) ShouldClose() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shouldClose
}

// Size reports the last size told by the driver, in physical pixels.
func (w *Window) Size() window.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

func (w *Window) DrawSize() window.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.drawSize
}

// SwapBuffers publishes the window content to the screen.
func (w *Window) SwapBuffers() { w.w.Publish() }

func (w *Window) WaitEvent() (input.Event, time.Time) {
	q := <-w.ch
	return q.event, q.time
}

func (w *Window) WaitEventTimeout(timeout time.Duration) (input.Event, time.Time, bool) {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case q := <-w.ch:
		return q.event, q.time, true
	case <-t.C:
		return nil, time.Time{}, false
	}
}

func (w *Window) PollEvent() (input.Event, time.Time, bool) {
	select {
	case q := <-w.ch:
		return q.event, q.time, true
	default:
		return nil, time.Time{}, false
	}
}

// Fill paints the rectangle dr with a uniform color.
func (w *Window) Fill(dr image.Rectangle, c color.Color) {
	w.w.Fill(dr, c, draw.Src)
}

// Release destroys the OS window. Call it after event retrieval is done.
func (w *Window) Release() { w.w.Release() }
