package tagmerge

import "strings"

// TagKind tells whether a tag opens, closes or opens-and-closes an element.
type TagKind int

const (
	OpenTag TagKind = iota
	CloseTag
	SelfClosingTag
)

func (k TagKind) String() string {
	switch k {
	case OpenTag:
		return "open"
	case CloseTag:
		return "close"
	case SelfClosingTag:
		return "self-closing"
	}
	return "unknown"
}

// Attribute is a single name/value pair as written in the source.
type Attribute struct {
	Name     string
	Value    string
	HasValue bool // false for bare attributes such as <input disabled>
}

// Tag is one parsed tag occurrence. Tags are created by the Tokenizer per event
// and must not be retained by rules after dispatch.
type Tag struct {
	Name       string // as written; match with LowerName
	Kind       TagKind
	Attributes []Attribute
	Raw        string // exact source span, used for pass-through
	Pos        Position
}

// LowerName returns the lower-cased tag name used for rule lookup.
func (t *Tag) LowerName() string { return strings.ToLower(t.Name) }

// Attr returns the value of the first attribute named name. Lookup is case-sensitive.
func (t *Tag) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// RequiredAttr is like Attr but reports absence as an *AttributeMissingError.
func (t *Tag) RequiredAttr(name string) (string, error) {
	v, ok := t.Attr(name)
	if !ok {
		return "", &AttributeMissingError{TagName: t.Name, AttributeName: name, Pos: t.Pos}
	}
	return v, nil
}

// AttrMap returns the attributes as a map; the first occurrence of a name wins.
func (t *Tag) AttrMap() map[string]string {
	m := make(map[string]string, len(t.Attributes))
	for _, a := range t.Attributes {
		if _, dup := m[a.Name]; !dup {
			m[a.Name] = a.Value
		}
	}
	return m
}
