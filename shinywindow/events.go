package shinywindow

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/mzki/fakedpi/input"
	"github.com/mzki/fakedpi/util/log"
	"github.com/mzki/fakedpi/window"
)

// geometryOf extracts window and framebuffer size from a size event.
func geometryOf(e interface{}) (win, draw window.Size, ok bool) {
	se, isSize := e.(size.Event)
	if !isSize {
		return window.Size{}, window.Size{}, false
	}
	s := window.Size{Width: float64(se.WidthPx), Height: float64(se.HeightPx)}
	return s, s, true
}

// isDead reports whether e tells the window is gone.
func isDead(e interface{}) bool {
	le, isLifecycle := e.(lifecycle.Event)
	return isLifecycle && le.To == lifecycle.StageDead
}

// convert translates one shiny event into input events.
// One shiny event can produce several input events, e.g. a key press
// carrying a rune emits both Button and Text. Events with no input
// meaning produce none.
func convert(e interface{}) []input.Event {
	switch e := e.(type) {
	case lifecycle.Event:
		var evs []input.Event
		switch e.Crosses(lifecycle.StageFocused) {
		case lifecycle.CrossOn:
			evs = append(evs, input.Focus{Focused: true})
		case lifecycle.CrossOff:
			evs = append(evs, input.Focus{Focused: false})
		}
		if e.To == lifecycle.StageDead {
			evs = append(evs, input.Close{})
		}
		return evs

	case key.Event:
		var evs []input.Event
		switch e.Direction {
		case key.DirPress:
			evs = append(evs, input.Button{State: input.Press, Source: input.Keyboard, Code: int32(e.Code)})
		case key.DirRelease:
			evs = append(evs, input.Button{State: input.Release, Source: input.Keyboard, Code: int32(e.Code)})
		}
		// DirNone is key repeat, it carries text but no state change.
		if e.Direction != key.DirRelease && e.Rune >= 0 {
			evs = append(evs, input.Text{Text: string(e.Rune)})
		}
		return evs

	case mouse.Event:
		if dx, dy, isWheel := wheelDelta(e.Button); isWheel {
			return []input.Event{input.MouseScroll{DX: dx, DY: dy}}
		}
		evs := []input.Event{input.MouseCursor{X: float64(e.X), Y: float64(e.Y)}}
		switch e.Direction {
		case mouse.DirPress:
			evs = append(evs, input.Button{State: input.Press, Source: input.Mouse, Code: int32(e.Button)})
		case mouse.DirRelease:
			evs = append(evs, input.Button{State: input.Release, Source: input.Mouse, Code: int32(e.Button)})
		}
		return evs

	case size.Event:
		return []input.Event{input.Resize{
			DrawWidth:  e.WidthPx,
			DrawHeight: e.HeightPx,
			Width:      float64(e.WidthPx),
			Height:     float64(e.HeightPx),
		}}

	case touch.Event:
		return []input.Event{input.Touch{
			ID:       int64(e.Sequence),
			X:        float64(e.X),
			Y:        float64(e.Y),
			Pressure: 1,
		}}

	case paint.Event:
		// rendering concern, not an input event.
		return nil

	default:
		log.Debugf("shinywindow: drop unhandled event %T", e)
		return nil
	}
}

// wheelDelta maps shiny wheel pseudo buttons to scroll deltas.
// positive Y scrolls up, positive X scrolls right.
func wheelDelta(b mouse.Button) (dx, dy float64, ok bool) {
	switch b {
	case mouse.ButtonWheelUp:
		return 0, 1, true
	case mouse.ButtonWheelDown:
		return 0, -1, true
	case mouse.ButtonWheelLeft:
		return -1, 0, true
	case mouse.ButtonWheelRight:
		return 1, 0, true
	}
	return 0, 0, false
}
