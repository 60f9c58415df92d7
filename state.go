package tagmerge

import "strings"

// Rule handles one tag occurrence. Rules may write to the current buffer, push
// and pop buffers, and change the current state through ctx.
type Rule interface {
	Process(ctx *Context, tag *Tag) error
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(ctx *Context, tag *Tag) error

func (f RuleFunc) Process(ctx *Context, tag *Tag) error { return f(ctx, tag) }

// PassThroughRule copies the tag markup unchanged into the current buffer.
var PassThroughRule Rule = RuleFunc(func(ctx *Context, tag *Tag) error {
	_, err := ctx.CurrentBuffer().WriteString(tag.Raw)
	return err
})

// TextHandler replaces the default handling of text runs for a state.
type TextHandler func(ctx *Context, text string) error

// State is a set of tag-name to rule bindings. Build states before processing;
// they are read but never modified while a document is processed.
type State struct {
	name         string
	rules        map[string]Rule
	interceptAll bool
	text         TextHandler
}

// StateOption configures a State.
type StateOption func(*State)

// Named sets the name used when logging state changes.
func Named(name string) StateOption {
	return func(s *State) { s.name = name }
}

// InterceptAll routes every tag through the state, whether or not a rule is bound to it.
// Unbound tags are then handled by PassThroughRule.
func InterceptAll() StateOption {
	return func(s *State) { s.interceptAll = true }
}

// WithTextHandler overrides how text runs are written while the state is current.
func WithTextHandler(h TextHandler) StateOption {
	return func(s *State) { s.text = h }
}

func NewState(opts ...StateOption) *State {
	s := &State{rules: map[string]Rule{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AddRule binds rule to the tag name, matched case-insensitively. A later
// registration for the same name replaces the earlier one.
func (s *State) AddRule(name string, rule Rule) {
	s.rules[strings.ToLower(name)] = rule
}

// ShouldProcessTag reports whether tags named name are handled by this state.
func (s *State) ShouldProcessTag(name string) bool {
	if s.interceptAll {
		return true
	}
	_, ok := s.rules[strings.ToLower(name)]
	return ok
}

// Rule returns the rule bound to name, or PassThroughRule.
func (s *State) Rule(name string) Rule {
	if r, ok := s.rules[strings.ToLower(name)]; ok {
		return r
	}
	return PassThroughRule
}

func (s *State) handleText(ctx *Context, text string) error {
	if s.text != nil {
		return s.text(ctx, text)
	}
	_, err := ctx.CurrentBuffer().WriteString(text)
	return err
}

func (s *State) String() string {
	if s.name == "" {
		return "unnamed"
	}
	return s.name
}
