package tagmerge

import (
	"errors"
	"fmt"
	"strings"
)

// Position represents a position in the input document.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// ErrUnbalancedBuffers is returned by Process when a rule pushed a buffer it never popped.
var ErrUnbalancedBuffers = errors.New("buffer stack not balanced after processing")

// ErrAlreadyProcessed is returned when Process is called twice on the same Processor.
var ErrAlreadyProcessed = errors.New("processor already used")

// AttributeMissingError is returned when a tag lacks an attribute a rule requires.
type AttributeMissingError struct {
	TagName       string
	AttributeName string
	Pos           Position
}

// Error implements the error interface.
func (e *AttributeMissingError) Error() string {
	return fmt.Sprintf("tag <%s> at %s is missing required attribute '%s'",
		e.TagName, e.Pos, e.AttributeName)
}

// RuleError wraps an error returned by a rule while handling a tag.
type RuleError struct {
	TagName string
	Pos     Position
	Err     error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return fmt.Sprintf("rule for <%s> at %s failed: %v", e.TagName, e.Pos, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

// InvariantError reports a buffer stack operation that a balanced rule set can never
// perform, such as popping the root buffer. It indicates a broken rule, not bad input.
type InvariantError struct {
	Op    string
	Depth int
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("buffer stack invariant violated: %s at depth %d", e.Op, e.Depth)
}

// Issue classifies a tokenizer warning.
type Issue int

const (
	// IssueUnterminatedTag means the input ended before the tag's closing '>'.
	IssueUnterminatedTag Issue = iota
	// IssueUnterminatedQuote means a quoted attribute value was never closed.
	IssueUnterminatedQuote
	// IssueBadAttribute means the attribute list could not be parsed.
	IssueBadAttribute
	// IssueUnterminatedComment means the input ended inside a <!-- comment.
	IssueUnterminatedComment
)

func (i Issue) String() string {
	switch i {
	case IssueUnterminatedTag:
		return "unterminated tag"
	case IssueUnterminatedQuote:
		return "unterminated quote"
	case IssueBadAttribute:
		return "bad attribute"
	case IssueUnterminatedComment:
		return "unterminated comment"
	}
	return fmt.Sprintf("issue(%d)", int(i))
}

// Warning describes malformed markup the tokenizer recovered from by treating
// the offending region as text.
type Warning struct {
	Issue   Issue
	Message string
	Pos     Position
	Context string // surrounding lines, with the offending line marked
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at %s: %s", w.Issue, w.Pos, w.Message)
}

// WarningError is returned by Process in strict mode for the first warning.
type WarningError struct {
	Warning Warning
}

// Error implements the error interface.
func (e *WarningError) Error() string {
	if e.Warning.Context != "" {
		return fmt.Sprintf("%s\nContext: %s", e.Warning, e.Warning.Context)
	}
	return e.Warning.String()
}

// NewWarning creates a Warning with a context snippet taken from input.
func NewWarning(issue Issue, pos Position, message, input string) Warning {
	return Warning{
		Issue:   issue,
		Message: message,
		Pos:     pos,
		Context: extractContext(input, pos),
	}
}

// extractContext extracts a snippet of text around pos, a few lines before and one after.
func extractContext(content string, pos Position) string {
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	startLine := max(0, pos.Line-3)
	endLine := min(len(lines)-1, pos.Line)

	var sb strings.Builder
	for i := startLine; i <= endLine; i++ {
		lineNum := i + 1
		if lineNum == pos.Line {
			sb.WriteString(fmt.Sprintf("-> %d: %s\n", lineNum, lines[i]))
			if pos.Column <= len(lines[i])+1 {
				sb.WriteString(strings.Repeat(" ", pos.Column+len(fmt.Sprint(lineNum))+4) + "^\n")
			}
		} else {
			sb.WriteString(fmt.Sprintf("   %d: %s\n", lineNum, lines[i]))
		}
	}

	return sb.String()
}
