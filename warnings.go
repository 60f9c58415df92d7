package tagmerge

import "github.com/rs/zerolog"

// WarningHandler receives tokenizer warnings.
type WarningHandler interface {
	OnWarning(w Warning)
}

type WarningHandlerFunc func(w Warning)

func (f WarningHandlerFunc) OnWarning(w Warning) { f(w) }

// LogWarnings returns a handler that logs every warning at warn level.
func LogWarnings(l zerolog.Logger) WarningHandler {
	return WarningHandlerFunc(func(w Warning) {
		l.Warn().
			Stringer("issue", w.Issue).
			Int("line", w.Pos.Line).
			Int("column", w.Pos.Column).
			Msg(w.Message)
	})
}

// WarningCollector keeps every warning it receives.
type WarningCollector struct {
	Warnings []Warning
}

func (c *WarningCollector) OnWarning(w Warning) { c.Warnings = append(c.Warnings, w) }
