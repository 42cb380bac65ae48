package replay

import (
	"io"
	"time"

	"github.com/ugorji/go/codec"

	"github.com/mzki/fakedpi/input"
	"github.com/mzki/fakedpi/window"
)

// Recorder wraps a window and writes every event it delivers to a
// stream readable by Player. All window operations delegate to Inner;
// only the event retrieval calls are intercepted.
//
// Write errors are not returned from the retrieval calls, the first one
// is kept and available from Err.
type Recorder struct {
	Inner window.Window

	enc *codec.Encoder
	err error
}

var _ window.Window = (*Recorder)(nil)

// NewRecorder wraps inner, writing delivered events to w.
func NewRecorder(inner window.Window, w io.Writer) *Recorder {
	return &Recorder{Inner: inner, enc: codec.NewEncoder(w, codecHandle)}
}

// Err returns the first stream write error, nil if none happened.
func (r *Recorder) Err() error { return r.err }

func (r *Recorder) write(e input.Event, t time.Time) {
	rec := toRecord(e, t)
	if err := r.enc.Encode(rec); err != nil && r.err == nil {
		r.err = err
	}
}

func (r *Recorder) SetShouldClose(should bool) { r.Inner.SetShouldClose(should) }
func (r *Recorder) ShouldClose() bool          { return r.Inner.ShouldClose() }
func (r *Recorder) Size() window.Size          { return r.Inner.Size() }
func (r *Recorder) DrawSize() window.Size      { return r.Inner.DrawSize() }
func (r *Recorder) SwapBuffers()               { r.Inner.SwapBuffers() }

func (r *Recorder) WaitEvent() (input.Event, time.Time) {
	e, t := r.Inner.WaitEvent()
	r.write(e, t)
	return e, t
}

func (r *Recorder) WaitEventTimeout(timeout time.Duration) (input.Event, time.Time, bool) {
	e, t, ok := r.Inner.WaitEventTimeout(timeout)
	if ok {
		r.write(e, t)
	}
	return e, t, ok
}

func (r *Recorder) PollEvent() (input.Event, time.Time, bool) {
	e, t, ok := r.Inner.PollEvent()
	if ok {
		r.write(e, t)
	}
	return e, t, ok
}
