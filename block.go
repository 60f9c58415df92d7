package tagmerge

// BlockRule handles a start tag and its matching end tag as a pair. Whatever
// Start returns is handed back to End for the same occurrence.
type BlockRule interface {
	Start(ctx *Context, tag *Tag) (any, error)
	End(ctx *Context, tag *Tag, data any) error
}

// Block adapts a BlockRule to a Rule. The returned rule pairs tags by nesting
// depth of its own tag name: each open tag pushes a frame, each close tag pops
// the innermost one. A self-closing tag runs Start and End back to back.
// A close tag with no open frame is copied through unchanged.
//
// The frame stack belongs to the returned rule, so bind one instance per
// Processor.
func Block(r BlockRule) Rule {
	return &blockRule{r: r}
}

type blockRule struct {
	r      BlockRule
	frames []any
}

func (b *blockRule) Process(ctx *Context, tag *Tag) error {
	switch tag.Kind {
	case OpenTag:
		data, err := b.r.Start(ctx, tag)
		if err != nil {
			return err
		}
		b.frames = append(b.frames, data)
		return nil
	case SelfClosingTag:
		data, err := b.r.Start(ctx, tag)
		if err != nil {
			return err
		}
		return b.r.End(ctx, tag, data)
	default:
		n := len(b.frames)
		if n == 0 {
			return PassThroughRule.Process(ctx, tag)
		}
		data := b.frames[n-1]
		b.frames[n-1] = nil
		b.frames = b.frames[:n-1]
		return b.r.End(ctx, tag, data)
	}
}
