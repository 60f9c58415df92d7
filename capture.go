package tagmerge

// Capture is the body of a tag collected by a CaptureRule.
type Capture struct {
	Name  string
	Attrs map[string]string
	Body  string
	Pos   Position
}

// CaptureHandler receives captures.
type CaptureHandler interface {
	OnCapture(c Capture)
}

type CaptureHandlerFunc func(c Capture)

func (f CaptureHandlerFunc) OnCapture(c Capture) { f(c) }

// CaptureRule collects the processed body of a tag and hands it to Handler.
// With Keep set the tag and its body are also written back to the enclosing
// buffer; otherwise both are removed from the output.
type CaptureRule struct {
	Handler CaptureHandler
	Keep    bool
}

type captureFrame struct {
	name  string
	attrs map[string]string
	raw   string
	pos   Position
}

// NewCaptureRule returns a rule that sends captures to h and drops them from the output.
func NewCaptureRule(h CaptureHandler) Rule {
	return Block(&CaptureRule{Handler: h})
}

func (r *CaptureRule) Start(ctx *Context, tag *Tag) (any, error) {
	ctx.PushBuffer()
	return &captureFrame{name: tag.Name, attrs: tag.AttrMap(), raw: tag.Raw, pos: tag.Pos}, nil
}

func (r *CaptureRule) End(ctx *Context, tag *Tag, data any) error {
	f := data.(*captureFrame)
	body := ctx.CurrentBufferContents()
	ctx.PopBuffer()

	r.Handler.OnCapture(Capture{Name: f.name, Attrs: f.attrs, Body: body, Pos: f.pos})

	if !r.Keep {
		return nil
	}
	out := ctx.CurrentBuffer()
	if tag.Kind == SelfClosingTag {
		_, err := out.WriteString(tag.Raw)
		return err
	}
	for _, s := range []string{f.raw, body, tag.Raw} {
		if _, err := out.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}
