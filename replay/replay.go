// package replay records the event stream a window delivers and plays
// it back later through a headless window, so that input handling logic
// can be exercised deterministically without a display.
package replay

import (
	"fmt"
	"time"

	"github.com/ugorji/go/codec"

	"github.com/mzki/fakedpi/input"
)

var codecHandle = func() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.RawToString = true
	return h
}()

// event kinds on the wire.
const (
	kindFocus uint8 = iota + 1
	kindCursor
	kindMouseCursor
	kindMouseRelative
	kindMouseScroll
	kindTouch
	kindControllerAxis
	kindButton
	kindText
	kindFileDrag
	kindResize
	kindClose
)

// record is the serialized form of one delivered event.
// The payload is flattened into plain fields so that no interface
// decoding is involved.
type record struct {
	Kind     uint8
	TimeNano int64

	Flag     bool
	X, Y     float64
	ID       int64
	Pressure float64
	Device   int32
	Axis     int32
	AxisPos  float64
	State    int8
	Source   int8
	Code     int32
	Text     string
	Path     string
	DrawW    int
	DrawH    int
}

// toRecord flattens an event with its timestamp.
// The switch covers the whole input variant set, a new variant panics
// here until it gets an explicit entry.
func toRecord(e input.Event, t time.Time) record {
	r := record{}
	if !t.IsZero() {
		r.TimeNano = t.UnixNano()
	}
	switch e := e.(type) {
	case input.Focus:
		r.Kind, r.Flag = kindFocus, e.Focused
	case input.Cursor:
		r.Kind, r.Flag = kindCursor, e.Inside
	case input.MouseCursor:
		r.Kind, r.X, r.Y = kindMouseCursor, e.X, e.Y
	case input.MouseRelative:
		r.Kind, r.X, r.Y = kindMouseRelative, e.DX, e.DY
	case input.MouseScroll:
		r.Kind, r.X, r.Y = kindMouseScroll, e.DX, e.DY
	case input.Touch:
		r.Kind, r.ID, r.X, r.Y, r.Pressure = kindTouch, e.ID, e.X, e.Y, e.Pressure
	case input.ControllerAxis:
		r.Kind, r.Device, r.Axis, r.AxisPos = kindControllerAxis, e.Device, e.Axis, e.Position
	case input.Button:
		r.Kind, r.State, r.Source, r.Code = kindButton, int8(e.State), int8(e.Source), e.Code
	case input.Text:
		r.Kind, r.Text = kindText, e.Text
	case input.FileDrag:
		r.Kind, r.State, r.Path = kindFileDrag, int8(e.State), e.Path
	case input.Resize:
		r.Kind, r.DrawW, r.DrawH, r.X, r.Y = kindResize, e.DrawWidth, e.DrawHeight, e.Width, e.Height
	case input.Close:
		r.Kind = kindClose
	default:
		panic(fmt.Sprintf("replay: unclassified input event %T", e))
	}
	return r
}

// fromRecord rebuilds the event and its timestamp.
func fromRecord(r record) (input.Event, time.Time, error) {
	var t time.Time
	if r.TimeNano != 0 {
		t = time.Unix(0, r.TimeNano)
	}
	switch r.Kind {
	case kindFocus:
		return input.Focus{Focused: r.Flag}, t, nil
	case kindCursor:
		return input.Cursor{Inside: r.Flag}, t, nil
	case kindMouseCursor:
		return input.MouseCursor{X: r.X, Y: r.Y}, t, nil
	case kindMouseRelative:
		return input.MouseRelative{DX: r.X, DY: r.Y}, t, nil
	case kindMouseScroll:
		return input.MouseScroll{DX: r.X, DY: r.Y}, t, nil
	case kindTouch:
		return input.Touch{ID: r.ID, X: r.X, Y: r.Y, Pressure: r.Pressure}, t, nil
	case kindControllerAxis:
		return input.ControllerAxis{Device: r.Device, Axis: r.Axis, Position: r.AxisPos}, t, nil
	case kindButton:
		return input.Button{State: input.ButtonState(r.State), Source: input.ButtonSource(r.Source), Code: r.Code}, t, nil
	case kindText:
		return input.Text{Text: r.Text}, t, nil
	case kindFileDrag:
		return input.FileDrag{State: input.FileDragState(r.State), Path: r.Path}, t, nil
	case kindResize:
		return input.Resize{DrawWidth: r.DrawW, DrawHeight: r.DrawH, Width: r.X, Height: r.Y}, t, nil
	case kindClose:
		return input.Close{}, t, nil
	}
	return nil, time.Time{}, fmt.Errorf("replay: unknown event kind %d", r.Kind)
}
