package tagmerge

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TokenHandler receives the events produced by a Tokenizer in document order.
type TokenHandler interface {
	// ShouldProcessTag is asked before a tag is parsed. Returning false makes the
	// tokenizer copy the whole tag through as text.
	ShouldProcessTag(name string) bool
	// Tag is called for every accepted tag.
	Tag(tag *Tag) error
	// Text is called with each run of text between accepted tags.
	Text(text string) error
	// Warning reports malformed markup that was recovered as text.
	Warning(w Warning)
}

// Tokenizer scans a document once, from start to end, splitting it into
// text runs and tags.
type Tokenizer struct {
	in string
	h  TokenHandler

	// line tracking for positions, advanced lazily
	trackOff   int
	trackLine  int
	lineOffset int
}

// NewTokenizer returns a tokenizer over in that reports to h.
func NewTokenizer(in string, h TokenHandler) *Tokenizer {
	return &Tokenizer{in: in, h: h, trackLine: 1}
}

// Start runs the scan to completion. It stops at the first error returned by the handler.
func (t *Tokenizer) Start() error {
	in := t.in
	i, textStart := 0, 0

	for i < len(in) {
		j := strings.IndexByte(in[i:], '<')
		if j < 0 {
			break
		}
		lt := i + j
		rest := in[lt:]

		// comments, declarations and processing instructions are text
		if strings.HasPrefix(rest, "<!--") {
			end := strings.Index(rest[4:], "-->")
			if end < 0 {
				t.warn(IssueUnterminatedComment, lt, "comment is never closed")
				i = len(in)
				break
			}
			i = lt + 4 + end + 3
			continue
		}
		if len(rest) > 1 && (rest[1] == '!' || rest[1] == '?') {
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				t.warn(IssueUnterminatedTag, lt, "declaration is never closed")
				i = len(in)
				break
			}
			i = lt + end + 1
			continue
		}

		p := lt + 1
		closing := p < len(in) && in[p] == '/'
		if closing {
			p++
		}
		if p >= len(in) || !isNameStart(in[p]) {
			i = lt + 1
			continue
		}
		ns := p
		for p < len(in) && isNameChar(in[p]) {
			p++
		}
		name := in[ns:p]

		if !t.h.ShouldProcessTag(name) {
			if end, ok := t.skipTag(p); ok {
				i = end
			} else {
				i = p
			}
			continue
		}

		tag, end, ok := t.parseTag(lt, p, name, closing)
		if !ok {
			// malformed: everything up to here stays text, resume after the name
			i = p
			continue
		}

		if lt > textStart {
			if err := t.h.Text(in[textStart:lt]); err != nil {
				return err
			}
		}
		if err := t.h.Tag(tag); err != nil {
			return err
		}
		i, textStart = end, end
	}

	if textStart < len(in) {
		return t.h.Text(in[textStart:])
	}
	return nil
}

// parseTag parses the attribute list starting at p, after the tag name.
// It returns the tag and the offset just past its '>'.
func (t *Tokenizer) parseTag(lt, p int, name string, closing bool) (*Tag, int, bool) {
	in := t.in
	var attrs []Attribute
	q := p

	for {
		q = skipSpace(in, q)
		if q >= len(in) {
			t.warn(IssueUnterminatedTag, lt, fmt.Sprintf("tag <%s> is never closed", name))
			return nil, 0, false
		}

		switch c := in[q]; {
		case c == '>':
			return t.newTag(lt, q+1, name, closing, OpenTag, attrs), q + 1, true
		case c == '/':
			if q+1 < len(in) && in[q+1] == '>' {
				return t.newTag(lt, q+2, name, closing, SelfClosingTag, attrs), q + 2, true
			}
			q++
			continue
		case c == '=' || c == '<' || c == '"' || c == '\'':
			t.warn(IssueBadAttribute, q, fmt.Sprintf("unexpected %q in tag <%s>", c, name))
			return nil, 0, false
		}

		ns := q
		for q < len(in) && !isSpace(in[q]) && !strings.ContainsRune("=>/<\"'", rune(in[q])) {
			q++
		}
		attr := Attribute{Name: in[ns:q]}

		q = skipSpace(in, q)
		if q < len(in) && in[q] == '=' {
			q = skipSpace(in, q+1)
			if q >= len(in) {
				t.warn(IssueUnterminatedTag, lt, fmt.Sprintf("tag <%s> is never closed", name))
				return nil, 0, false
			}
			if quote := in[q]; quote == '"' || quote == '\'' {
				end := strings.IndexByte(in[q+1:], quote)
				if end < 0 {
					t.warn(IssueUnterminatedQuote, q,
						fmt.Sprintf("value of attribute '%s' in tag <%s> is never closed", attr.Name, name))
					return nil, 0, false
				}
				attr.Value = in[q+1 : q+1+end]
				q += end + 2
			} else {
				vs := q
				for q < len(in) && !isSpace(in[q]) && in[q] != '>' {
					q++
				}
				if q == vs {
					t.warn(IssueBadAttribute, q,
						fmt.Sprintf("attribute '%s' in tag <%s> has no value", attr.Name, name))
					return nil, 0, false
				}
				attr.Value = in[vs:q]
			}
			attr.HasValue = true
		}
		attrs = append(attrs, attr)
	}
}

func (t *Tokenizer) newTag(lt, end int, name string, closing bool, kind TagKind, attrs []Attribute) *Tag {
	if closing {
		kind = CloseTag
	}
	return &Tag{
		Name:       name,
		Kind:       kind,
		Attributes: attrs,
		Raw:        t.in[lt:end],
		Pos:        t.position(lt),
	}
}

// skipTag finds the end of a declined tag, honoring quoted values.
func (t *Tokenizer) skipTag(p int) (int, bool) {
	in := t.in
	var quote byte
	for ; p < len(in); p++ {
		c := in[p]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '<':
			return 0, false
		case c == '>':
			return p + 1, true
		}
	}
	return 0, false
}

func (t *Tokenizer) warn(issue Issue, off int, msg string) {
	t.h.Warning(NewWarning(issue, t.position(off), msg, t.in))
}

// position converts a byte offset into a 1-based line and rune column.
func (t *Tokenizer) position(off int) Position {
	if off < t.trackOff {
		t.trackOff, t.trackLine, t.lineOffset = 0, 1, 0
	}
	for i := t.trackOff; i < off; i++ {
		if t.in[i] == '\n' {
			t.trackLine++
			t.lineOffset = i + 1
		}
	}
	t.trackOff = off
	return Position{
		Line:   t.trackLine,
		Column: utf8.RuneCountInString(t.in[t.lineOffset:off]) + 1,
	}
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '-' || c == ':' || c == '.'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
