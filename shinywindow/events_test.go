package shinywindow

import (
	"reflect"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/mzki/fakedpi/input"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		ev   interface{}
		want []input.Event
	}{
		{
			"mouse move",
			mouse.Event{X: 400, Y: 300, Button: mouse.ButtonNone, Direction: mouse.DirNone},
			[]input.Event{input.MouseCursor{X: 400, Y: 300}},
		},
		{
			"mouse press",
			mouse.Event{X: 10, Y: 20, Button: mouse.ButtonLeft, Direction: mouse.DirPress},
			[]input.Event{
				input.MouseCursor{X: 10, Y: 20},
				input.Button{State: input.Press, Source: input.Mouse, Code: int32(mouse.ButtonLeft)},
			},
		},
		{
			"wheel up",
			mouse.Event{Button: mouse.ButtonWheelUp, Direction: mouse.DirStep},
			[]input.Event{input.MouseScroll{DX: 0, DY: 1}},
		},
		{
			"key press with rune",
			key.Event{Rune: 'a', Code: key.CodeA, Direction: key.DirPress},
			[]input.Event{
				input.Button{State: input.Press, Source: input.Keyboard, Code: int32(key.CodeA)},
				input.Text{Text: "a"},
			},
		},
		{
			"key release",
			key.Event{Rune: 'a', Code: key.CodeA, Direction: key.DirRelease},
			[]input.Event{
				input.Button{State: input.Release, Source: input.Keyboard, Code: int32(key.CodeA)},
			},
		},
		{
			"size",
			size.Event{WidthPx: 1600, HeightPx: 1200},
			[]input.Event{input.Resize{DrawWidth: 1600, DrawHeight: 1200, Width: 1600, Height: 1200}},
		},
		{
			"touch",
			touch.Event{X: 0.5, Y: 0.25, Sequence: 7},
			[]input.Event{input.Touch{ID: 7, X: 0.5, Y: 0.25, Pressure: 1}},
		},
		{
			"focus gained",
			lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageFocused},
			[]input.Event{input.Focus{Focused: true}},
		},
		{
			"window dead",
			lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageDead},
			[]input.Event{input.Close{}},
		},
		{
			"paint produces nothing",
			paint.Event{},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convert(tt.ev)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("convert(%#v) = %#v, want %#v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestGeometryOf(t *testing.T) {
	win, draw, ok := geometryOf(size.Event{WidthPx: 800, HeightPx: 600})
	if !ok {
		t.Fatal("geometryOf(size.Event) = !ok")
	}
	if win.Width != 800 || win.Height != 600 || draw != win {
		t.Fatalf("geometryOf = (%v, %v)", win, draw)
	}
	if _, _, ok := geometryOf(paint.Event{}); ok {
		t.Fatal("geometryOf(paint.Event) must report !ok")
	}
}

func TestIsDead(t *testing.T) {
	if !isDead(lifecycle.Event{To: lifecycle.StageDead}) {
		t.Error("dead lifecycle event not detected")
	}
	if isDead(lifecycle.Event{To: lifecycle.StageFocused}) {
		t.Error("focused lifecycle event reported dead")
	}
	if isDead(paint.Event{}) {
		t.Error("paint event reported dead")
	}
}
