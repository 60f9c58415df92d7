package tagmerge

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairRecorder numbers each start and checks the number comes back on end.
type pairRecorder struct {
	next  int
	calls []string
}

func (r *pairRecorder) Start(ctx *Context, tag *Tag) (any, error) {
	r.next++
	r.calls = append(r.calls, fmt.Sprintf("start %d", r.next))
	ctx.PushBuffer()
	return r.next, nil
}

func (r *pairRecorder) End(ctx *Context, tag *Tag, data any) error {
	body := ctx.CurrentBufferContents()
	ctx.PopBuffer()
	r.calls = append(r.calls, fmt.Sprintf("end %d", data.(int)))
	_, err := ctx.CurrentBuffer().WriteString("[" + body + "]")
	return err
}

func Test_Block(t *testing.T) {
	t.Run("should pair nested same-named tags inner with inner", func(t *testing.T) {
		rec := &pairRecorder{}
		out := process(t, "<x>a<x>b</x>c</x>", func(p *Processor) { p.AddRule("x", Block(rec)) })
		assert.Empty(t, cmp.Diff([]string{"start 1", "start 2", "end 2", "end 1"}, rec.calls))
		assert.Equal(t, "[a[b]c]", out)
	})

	t.Run("should run start and end for a self-closing tag", func(t *testing.T) {
		rec := &pairRecorder{}
		out := process(t, "<x>a<x/>b</x>", func(p *Processor) { p.AddRule("x", Block(rec)) })
		assert.Empty(t, cmp.Diff([]string{"start 1", "start 2", "end 2", "end 1"}, rec.calls))
		assert.Equal(t, "[a[]b]", out)
	})

	t.Run("should keep independent stacks per rule instance", func(t *testing.T) {
		x, y := &pairRecorder{}, &pairRecorder{}
		out := process(t, "<x>1<y>2</x>3</y>", func(p *Processor) {
			p.AddRule("x", Block(x))
			p.AddRule("y", Block(y))
		})
		assert.Empty(t, cmp.Diff([]string{"start 1", "end 1"}, x.calls))
		assert.Empty(t, cmp.Diff([]string{"start 1", "end 1"}, y.calls))
		// the buffer stack is shared, so crossing tags swap bodies
		assert.Equal(t, "[1[2]3]", out)
	})

	t.Run("should copy a stray end tag through", func(t *testing.T) {
		rec := &pairRecorder{}
		out := process(t, "a</X>b", func(p *Processor) { p.AddRule("x", Block(rec)) })
		assert.Equal(t, "a</X>b", out)
		assert.Empty(t, rec.calls)
	})

	t.Run("should not push a frame when start fails", func(t *testing.T) {
		failing := &failingStart{}
		p := NewProcessor("<x>a</x>")
		p.AddRule("x", Block(failing))
		require.Error(t, p.Process())
		assert.Equal(t, 0, failing.ends)
	})
}

type failingStart struct{ ends int }

func (f *failingStart) Start(*Context, *Tag) (any, error) { return nil, fmt.Errorf("start failed") }

func (f *failingStart) End(*Context, *Tag, any) error {
	f.ends++
	return nil
}
