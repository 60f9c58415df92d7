package tagmerge

import (
	"io"

	"github.com/rs/zerolog"
)

// Sink is the write-only view of the current buffer handed to rules.
type Sink interface {
	io.Writer
	io.StringWriter
}

// Context is what a rule sees of the running Processor: the buffer stack and
// the current state slot. It is only valid for the duration of one Process call.
type Context struct {
	buffers []*Buffer
	state   *State
	log     zerolog.Logger
}

func newContext(root *Buffer, state *State, log zerolog.Logger) *Context {
	buffers := make([]*Buffer, 1, 8)
	buffers[0] = root
	return &Context{buffers: buffers, state: state, log: log}
}

// CurrentState returns the state used to resolve the next tag.
func (c *Context) CurrentState() *State { return c.state }

// ChangeState replaces the current state. It takes effect from the next tag.
func (c *Context) ChangeState(s *State) {
	if s == nil {
		panic(&InvariantError{Op: "change to nil state", Depth: len(c.buffers)})
	}
	c.log.Debug().Str("state", s.String()).Msg("state changed")
	c.state = s
}

// PushBuffer makes a new empty buffer current.
func (c *Context) PushBuffer() {
	c.buffers = append(c.buffers, &Buffer{})
	c.log.Debug().Int("depth", len(c.buffers)).Msg("buffer pushed")
}

// CurrentBuffer returns the buffer output is currently written to.
func (c *Context) CurrentBuffer() Sink { return c.buffers[len(c.buffers)-1] }

// CurrentBufferContents returns what has been written to the current buffer so far.
func (c *Context) CurrentBufferContents() string {
	return c.buffers[len(c.buffers)-1].String()
}

// PopBuffer discards the current buffer and restores the one beneath it.
// Popping the root buffer panics with an *InvariantError.
func (c *Context) PopBuffer() {
	n := len(c.buffers)
	if n <= 1 {
		panic(&InvariantError{Op: "pop root buffer", Depth: n})
	}
	c.buffers[n-1] = nil
	c.buffers = c.buffers[:n-1]
	c.log.Debug().Int("depth", n-1).Msg("buffer popped")
}

// Depth returns the number of buffers on the stack, root included.
func (c *Context) Depth() int { return len(c.buffers) }
