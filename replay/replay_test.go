package replay_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/mzki/fakedpi/input"
	"github.com/mzki/fakedpi/replay"
	"github.com/mzki/fakedpi/window"
	mock_window "github.com/mzki/fakedpi/window/mock"
)

func TestRecordThenPlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := mock_window.NewMockWindow(ctrl)

	events := []input.Event{
		input.MouseCursor{X: 400, Y: 300},
		input.Button{State: input.Press, Source: input.Mouse, Code: 1},
		input.Resize{DrawWidth: 1600, DrawHeight: 1200, Width: 1600, Height: 1200},
		input.Text{Text: "hi"},
		input.Close{},
	}
	base := time.Unix(100, 0)

	buf := new(bytes.Buffer)
	rec := replay.NewRecorder(inner, buf)
	for i, e := range events {
		inner.EXPECT().PollEvent().Return(e, base.Add(time.Duration(i)*time.Second), true)
		if got, _, ok := rec.PollEvent(); !ok || got != e {
			t.Fatalf("Recorder.PollEvent() = (%v, %v), want (%v, true)", got, ok, e)
		}
	}
	if err := rec.Err(); err != nil {
		t.Fatal(err)
	}

	size := window.Size{Width: 1600, Height: 1200}
	player := replay.NewPlayer(buf, size)
	if got := player.Size(); got != size {
		t.Fatalf("Player.Size() = %v, want %v", got, size)
	}
	for i, e := range events {
		got, ts, ok := player.PollEvent()
		if !ok {
			t.Fatalf("replayed stream ended early at %d", i)
		}
		if got != e {
			t.Errorf("replayed event %d = %#v, want %#v", i, got, e)
		}
		if want := base.Add(time.Duration(i) * time.Second); !ts.Equal(want) {
			t.Errorf("replayed timestamp %d = %v, want %v", i, ts, want)
		}
	}

	// exhausted stream: poll reports nothing, wait returns Close.
	if e, _, ok := player.PollEvent(); ok {
		t.Fatalf("PollEvent() after end = (%v, true), want no event", e)
	}
	if e, _ := player.WaitEvent(); e != input.Event(input.Close{}) {
		t.Fatalf("WaitEvent() after end = %v, want Close", e)
	}
	if !player.ShouldClose() {
		t.Error("ShouldClose() = false after exhausted stream")
	}
}

func TestRecorderDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := mock_window.NewMockWindow(ctrl)
	rec := replay.NewRecorder(inner, new(bytes.Buffer))

	inner.EXPECT().Size().Return(window.Size{Width: 10, Height: 20})
	if size := rec.Size(); size.Width != 10 || size.Height != 20 {
		t.Errorf("Size() = %v, want (10, 20)", size)
	}
	inner.EXPECT().SetShouldClose(true)
	rec.SetShouldClose(true)
	inner.EXPECT().SwapBuffers()
	rec.SwapBuffers()

	// timeouts record nothing.
	inner.EXPECT().WaitEventTimeout(time.Second).Return(nil, time.Time{}, false)
	if _, _, ok := rec.WaitEventTimeout(time.Second); ok {
		t.Error("WaitEventTimeout() = ok on inner timeout")
	}
	if err := rec.Err(); err != nil {
		t.Fatal(err)
	}
}
