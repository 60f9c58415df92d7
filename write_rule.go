package tagmerge

// WriteRule replaces tags such as <sitemesh:write property="title"/> with the
// named property of the content being merged. The tag body is always discarded,
// whether or not the property exists.
type WriteRule struct {
	Source ContentSource
}

// NewWriteRule returns a rule ready to be bound to a tag name.
func NewWriteRule(src ContentSource) Rule {
	return Block(&WriteRule{Source: src})
}

func (r *WriteRule) Start(ctx *Context, tag *Tag) (any, error) {
	name, err := tag.RequiredAttr("property")
	if err != nil {
		return nil, err
	}
	// written before the push, so it lands where the tag itself sits
	if c := r.Source.ContentToMerge(); c != nil {
		if p := c.Property(name); p != nil && p.Exists() {
			if _, err := p.WriteTo(ctx.CurrentBuffer()); err != nil {
				return nil, err
			}
		}
	}
	ctx.PushBuffer()
	return nil, nil
}

func (r *WriteRule) End(ctx *Context, tag *Tag, _ any) error {
	ctx.PopBuffer()
	return nil
}
