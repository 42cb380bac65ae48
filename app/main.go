// package app is a small demo application showing fakedpi wrapped
// around the shiny backend: it logs the logical geometry it observes
// and repaints on resize, while config edits retune the DPI factor of
// the running window.
package app

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/colornames"

	"github.com/mzki/fakedpi"
	"github.com/mzki/fakedpi/input"
	"github.com/mzki/fakedpi/shinywindow"
	"github.com/mzki/fakedpi/util/log"
	"github.com/mzki/fakedpi/window"
)

// how long one event wait lasts before checking for config updates.
const eventWait = 50 * time.Millisecond

var backgrounds = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkolivegreen,
	colornames.Indianred,
	colornames.Goldenrod,
}

// entry point of the demo application. conf nil is OK,
// use default if it is.
// its internal errors are handled by itself.
func Main(title string, conf *Config) {
	if conf == nil {
		conf = NewConfig()
	}

	// returned value must be called once.
	reset, err := SetupLogConfig(conf)
	if err != nil {
		fmt.Printf("log configuration failed: %v\n", err)
		return
	}
	defer reset()

	log.Infof("-- %s --", title)

	driver.Main(func(s screen.Screen) {
		// capture panic as error in this thread
		defer func() {
			if rec := recover(); rec != nil {
				buf := make([]byte, 4096)
				bufEnd := runtime.Stack(buf, false)
				log.Info("PANIC: ", fmt.Errorf("%v\n%v\n", rec, string(buf[:bufEnd])))
			}
		}()

		if err := runWindow(title, s, conf); err != nil {
			log.Info("Error: app.runWindow(): ", err)
		} else {
			log.Info("...quiting correctly")
		}
	})
}

func runWindow(title string, s screen.Screen, conf *Config) error {
	settings := window.Settings{
		Title:  title,
		Width:  conf.Width,
		Height: conf.Height,
	}
	w, err := fakedpi.Build(settings, shinywindow.Builder(s))
	if err != nil {
		return fmt.Errorf("build window: %w", err)
	}
	defer w.Inner.Release()
	if conf.Dpi > 0 {
		w.Dpi = conf.Dpi
	}

	// config edits arrive here and are applied between events, so the
	// factor is only touched from this goroutine.
	dpiCh := make(chan float64, 1)
	watcher, err := WatchConfig(ConfigFile, func(c *Config) {
		if c.Dpi > 0 {
			select {
			case dpiCh <- c.Dpi:
			default:
			}
		}
	})
	if err != nil {
		log.Infof("config watch disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	background := 0
	for !w.ShouldClose() {
		select {
		case dpi := <-dpiCh:
			if dpi != w.Dpi {
				log.Infof("dpi factor %v -> %v, logical size now %v", w.Dpi, dpi, sizeAt(w, dpi))
				w.Dpi = dpi
			}
		default:
		}

		e, _, ok := w.WaitEventTimeout(eventWait)
		if !ok {
			continue
		}
		switch e := e.(type) {
		case input.Close:
			w.SetShouldClose(true)

		case input.Resize:
			log.Debugf("resize: draw %dx%d px, window %.0fx%.0f logical",
				e.DrawWidth, e.DrawHeight, e.Width, e.Height)
			paint(w, backgrounds[background])

		case input.MouseCursor:
			log.Debugf("cursor: (%.1f, %.1f) in %v logical", e.X, e.Y, w.Size())

		case input.MouseScroll:
			log.Debugf("scroll: (%.2f, %.2f)", e.DX, e.DY)

		case input.Button:
			if e.Source == input.Keyboard && e.State == input.Press {
				background = (background + 1) % len(backgrounds)
				paint(w, backgrounds[background])
			}

		case input.Focus:
			log.Debugf("focus: %v", e.Focused)

		default:
			log.Debugf("event: %#v", e)
		}
	}
	return nil
}

func sizeAt(w *fakedpi.Window[*shinywindow.Window], dpi float64) window.Size {
	physical := w.Inner.Size()
	return window.Size{Width: physical.Width / dpi, Height: physical.Height / dpi}
}

// paint fills the whole framebuffer, sized in physical pixels, and
// presents it.
func paint(w *fakedpi.Window[*shinywindow.Window], bg color.RGBA) {
	draw := w.DrawSize()
	w.Inner.Fill(image.Rect(0, 0, int(draw.Width), int(draw.Height)), bg)
	w.SwapBuffers()
}
