package tagmerge

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Processor copies a document into an output buffer, applying rules to the
// tags its current state intercepts. A Processor processes one document once.
type Processor struct {
	in           string
	root         *Buffer
	defaultState *State
	log          zerolog.Logger
	warnings     WarningHandler
	strict       bool

	ctx  *Context
	used bool
}

// NewProcessor returns a processor over in with an empty default state.
func NewProcessor(in string, opts ...func(*Processor)) *Processor {
	p := &Processor{
		in:           in,
		root:         &Buffer{},
		defaultState: NewState(Named("default")),
		log:          zerolog.Nop(),
		warnings:     WarningHandlerFunc(func(Warning) {}),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// WithLogger sets the logger used for debug output of dispatch and buffer operations.
func WithLogger(l zerolog.Logger) func(*Processor) {
	return func(p *Processor) { p.log = l }
}

// WithWarningHandler sets where tokenizer warnings go. They are dropped by default.
func WithWarningHandler(h WarningHandler) func(*Processor) {
	return func(p *Processor) { p.warnings = h }
}

// WithStrictWarnings makes Process fail with a *WarningError on the first warning.
func WithStrictWarnings() func(*Processor) {
	return func(p *Processor) { p.strict = true }
}

// WithDefaultState replaces the state processing starts in.
func WithDefaultState(s *State) func(*Processor) {
	return func(p *Processor) { p.defaultState = s }
}

// DefaultState returns the state processing starts in.
func (p *Processor) DefaultState() *State { return p.defaultState }

// AddRule is shorthand for DefaultState().AddRule.
func (p *Processor) AddRule(name string, rule Rule) { p.defaultState.AddRule(name, rule) }

// Output returns the contents of the root buffer.
func (p *Processor) Output() string { return p.root.String() }

// Depth returns the size of the buffer stack; 1 after a successful Process.
func (p *Processor) Depth() int {
	if p.ctx == nil {
		return 1
	}
	return p.ctx.Depth()
}

// Process runs the document through the rules. It returns the first rule
// error, a *WarningError in strict mode, or an *InvariantError when a rule
// unbalances the buffer stack.
func (p *Processor) Process() (err error) {
	if p.used {
		return ErrAlreadyProcessed
	}
	p.used = true
	p.ctx = newContext(p.root, p.defaultState, p.log)

	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InvariantError)
			if !ok {
				panic(r)
			}
			p.log.Error().Err(ie).Msg("processing aborted")
			err = ie
		}
	}()

	h := &dispatcher{p: p, ctx: p.ctx}
	if err := NewTokenizer(p.in, h).Start(); err != nil {
		return err
	}
	if h.warnErr != nil {
		return h.warnErr
	}
	if d := p.ctx.Depth(); d != 1 {
		return fmt.Errorf("%w: %d buffers left", ErrUnbalancedBuffers, d)
	}
	return nil
}

// dispatcher connects the tokenizer to the current state.
type dispatcher struct {
	p       *Processor
	ctx     *Context
	warnErr *WarningError
}

func (d *dispatcher) ShouldProcessTag(name string) bool {
	return d.ctx.CurrentState().ShouldProcessTag(name)
}

func (d *dispatcher) Tag(tag *Tag) error {
	if d.warnErr != nil {
		return d.warnErr
	}
	// resolved now, not when peeked: a rule may have changed the state since
	rule := d.ctx.CurrentState().Rule(tag.LowerName())
	d.p.log.Debug().
		Str("tag", tag.Name).
		Stringer("kind", tag.Kind).
		Int("line", tag.Pos.Line).
		Int("column", tag.Pos.Column).
		Int("depth", d.ctx.Depth()).
		Msg("dispatching tag")
	if err := rule.Process(d.ctx, tag); err != nil {
		return &RuleError{TagName: tag.Name, Pos: tag.Pos, Err: err}
	}
	return nil
}

func (d *dispatcher) Text(text string) error {
	if d.warnErr != nil {
		return d.warnErr
	}
	return d.ctx.CurrentState().handleText(d.ctx, text)
}

func (d *dispatcher) Warning(w Warning) {
	d.p.warnings.OnWarning(w)
	if d.p.strict && d.warnErr == nil {
		d.warnErr = &WarningError{Warning: w}
	}
}
