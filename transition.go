package tagmerge

// StateTransitionRule switches to Target for the body of a tag and restores
// the previous state at the matching end tag. Target must bind the same rule
// instance to the tag name, or the end tag is never seen.
//
//	script := NewState(Named("script"))
//	rule := Block(&StateTransitionRule{Target: script})
//	p.AddRule("script", rule)
//	script.AddRule("script", rule)
type StateTransitionRule struct {
	Target *State
	// Drop removes the start and end tags from the output.
	Drop bool
}

func (r *StateTransitionRule) Start(ctx *Context, tag *Tag) (any, error) {
	prev := ctx.CurrentState()
	if !r.Drop {
		if _, err := ctx.CurrentBuffer().WriteString(tag.Raw); err != nil {
			return nil, err
		}
	}
	if tag.Kind != SelfClosingTag {
		ctx.ChangeState(r.Target)
	}
	return prev, nil
}

func (r *StateTransitionRule) End(ctx *Context, tag *Tag, data any) error {
	if tag.Kind == SelfClosingTag {
		return nil
	}
	ctx.ChangeState(data.(*State))
	if r.Drop {
		return nil
	}
	_, err := ctx.CurrentBuffer().WriteString(tag.Raw)
	return err
}
