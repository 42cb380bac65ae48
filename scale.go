package fakedpi

import (
	"fmt"

	"github.com/mzki/fakedpi/input"
)

// ScaleEvent converts physical coordinates carried by e into logical
// units by dividing them by dpi. Events without density-dependent
// payload are returned unchanged. dpi must be positive; the function
// itself never fails.
//
// The type switch covers the whole input variant set. A variant added
// to package input panics here until it gets an explicit entry, so that
// the scaling decision is never made by a silent default.
func ScaleEvent(dpi float64, e input.Event) input.Event {
	switch e := e.(type) {
	case input.Focus, input.Cursor, input.Touch, input.ControllerAxis,
		input.Button, input.Text, input.FileDrag, input.Close:
		return e
	case input.MouseCursor:
		return input.MouseCursor{X: e.X / dpi, Y: e.Y / dpi}
	case input.MouseRelative:
		return input.MouseRelative{DX: e.DX / dpi, DY: e.DY / dpi}
	case input.MouseScroll:
		return input.MouseScroll{DX: e.DX / dpi, DY: e.DY / dpi}
	case input.Resize:
		// draw size stays in physical pixels for framebuffer allocation,
		// window size is converted for layout.
		return input.Resize{
			DrawWidth:  e.DrawWidth,
			DrawHeight: e.DrawHeight,
			Width:      e.Width / dpi,
			Height:     e.Height / dpi,
		}
	default:
		panic(fmt.Sprintf("fakedpi: unclassified input event %T", e))
	}
}
