package replay

import (
	"io"
	"time"

	"github.com/ugorji/go/codec"

	"github.com/mzki/fakedpi/input"
	"github.com/mzki/fakedpi/util/log"
	"github.com/mzki/fakedpi/window"
)

// Player replays a recorded event stream as a headless window.
// Geometry is fixed to the size given at construction, SwapBuffers is a
// no-op. When the stream is exhausted PollEvent and WaitEventTimeout
// report no event, WaitEvent returns Close so that a wait loop can not
// hang on a finished recording.
type Player struct {
	dec *codec.Decoder

	size        window.Size
	shouldClose bool
	done        bool
}

var _ window.Window = (*Player)(nil)

// NewPlayer replays the stream from r, simulating a window of the
// given physical size.
func NewPlayer(r io.Reader, size window.Size) *Player {
	return &Player{dec: codec.NewDecoder(r, codecHandle), size: size}
}

func (p *Player) next() (input.Event, time.Time, bool) {
	if p.done {
		return nil, time.Time{}, false
	}
	var rec record
	if err := p.dec.Decode(&rec); err != nil {
		if err != io.EOF {
			log.Debugf("replay: stream ends with %v", err)
		}
		p.done = true
		p.shouldClose = true
		return nil, time.Time{}, false
	}
	e, t, err := fromRecord(rec)
	if err != nil {
		log.Debugf("replay: %v", err)
		p.done = true
		p.shouldClose = true
		return nil, time.Time{}, false
	}
	return e, t, true
}

func (p *Player) SetShouldClose(should bool) { p.shouldClose = should }
func (p *Player) ShouldClose() bool          { return p.shouldClose }
func (p *Player) Size() window.Size          { return p.size }
func (p *Player) DrawSize() window.Size      { return p.size }
func (p *Player) SwapBuffers()               {}

func (p *Player) WaitEvent() (input.Event, time.Time) {
	if e, t, ok := p.next(); ok {
		return e, t
	}
	return input.Close{}, time.Time{}
}

func (p *Player) WaitEventTimeout(timeout time.Duration) (input.Event, time.Time, bool) {
	return p.next()
}

func (p *Player) PollEvent() (input.Event, time.Time, bool) {
	return p.next()
}
