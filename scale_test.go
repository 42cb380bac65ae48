package fakedpi

import (
	"math"
	"reflect"
	"testing"

	"github.com/mzki/fakedpi/input"
)

func TestScaleEventCoordinates(t *testing.T) {
	const dpi = 2.0
	tests := []struct {
		name string
		ev   input.Event
		want input.Event
	}{
		{"mouse cursor", input.MouseCursor{X: 400, Y: 300}, input.MouseCursor{X: 200, Y: 150}},
		{"mouse relative", input.MouseRelative{DX: 10, DY: -6}, input.MouseRelative{DX: 5, DY: -3}},
		{"mouse scroll", input.MouseScroll{DX: 0, DY: 2}, input.MouseScroll{DX: 0, DY: 1}},
		{
			"resize keeps draw size",
			input.Resize{DrawWidth: 1600, DrawHeight: 1200, Width: 1600, Height: 1200},
			input.Resize{DrawWidth: 1600, DrawHeight: 1200, Width: 800, Height: 600},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleEvent(dpi, tt.ev)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ScaleEvent(%v, %v) = %v, want %v", dpi, tt.ev, got, tt.want)
			}
		})
	}
}

func TestScaleEventPassesThroughNonGeometric(t *testing.T) {
	events := []input.Event{
		input.Focus{Focused: true},
		input.Cursor{Inside: false},
		input.Touch{ID: 3, X: 0.5, Y: 0.25, Pressure: 1},
		input.ControllerAxis{Device: 0, Axis: 1, Position: -0.5},
		input.Button{State: input.Press, Source: input.Mouse, Code: 1},
		input.Text{Text: "a"},
		input.FileDrag{State: input.FileDrop, Path: "/tmp/file"},
		input.Close{},
	}
	for _, ev := range events {
		for _, dpi := range []float64{0.5, 1.0, 2.0, 3.5} {
			if got := ScaleEvent(dpi, ev); !reflect.DeepEqual(got, ev) {
				t.Fatalf("ScaleEvent(%v, %#v) = %#v, must be unchanged", dpi, ev, got)
			}
		}
	}
}

func TestScaleEventIdentityFactor(t *testing.T) {
	events := []input.Event{
		input.MouseCursor{X: 123.5, Y: -7},
		input.MouseRelative{DX: 1, DY: 2},
		input.MouseScroll{DX: -1, DY: 0.5},
		input.Resize{DrawWidth: 640, DrawHeight: 480, Width: 640, Height: 480},
	}
	for _, ev := range events {
		if got := ScaleEvent(1.0, ev); !reflect.DeepEqual(got, ev) {
			t.Fatalf("ScaleEvent(1.0, %#v) = %#v, must be unchanged", ev, got)
		}
	}
}

func TestScaleEventInverseRoundTrip(t *testing.T) {
	const dpi = 2.5
	const eps = 1e-9
	near := func(a, b float64) bool { return math.Abs(a-b) < eps }

	orig := input.MouseCursor{X: 333.3, Y: 777.7}
	back := ScaleEvent(1/dpi, ScaleEvent(dpi, orig)).(input.MouseCursor)
	if !near(back.X, orig.X) || !near(back.Y, orig.Y) {
		t.Fatalf("inverse round trip = %v, want %v", back, orig)
	}

	origR := input.Resize{DrawWidth: 100, DrawHeight: 50, Width: 123.4, Height: 567.8}
	backR := ScaleEvent(1/dpi, ScaleEvent(dpi, origR)).(input.Resize)
	if backR.DrawWidth != origR.DrawWidth || backR.DrawHeight != origR.DrawHeight {
		t.Fatalf("draw size changed in round trip: %v, want %v", backR, origR)
	}
	if !near(backR.Width, origR.Width) || !near(backR.Height, origR.Height) {
		t.Fatalf("inverse round trip = %v, want %v", backR, origR)
	}
}
