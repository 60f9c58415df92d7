// Package content provides Content implementations for tagmerge: plain maps,
// YAML property documents and XHTML pages.
package content

import (
	"io"

	"github.com/grahms/tagmerge"
)

// Map is Content backed by a map of property names to values.
type Map map[string]string

// Property returns the named property; missing names yield a property that does not exist.
func (m Map) Property(name string) tagmerge.Property {
	v, ok := m[name]
	return property{value: v, exists: ok}
}

type property struct {
	value  string
	exists bool
}

func (p property) Exists() bool { return p.exists }

func (p property) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.value)
	return int64(n), err
}

// Static returns a source that always merges c. Static(nil) merges nothing.
func Static(c tagmerge.Content) tagmerge.ContentSource {
	return tagmerge.ContentSourceFunc(func() tagmerge.Content { return c })
}
