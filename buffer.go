package tagmerge

import (
	"io"
	"strings"
)

// Buffer is an append-only text sink. Appended chunks are kept as-is and only
// joined when the contents are read.
type Buffer struct {
	chunks []string
	size   int
}

// WriteString appends s. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	if s != "" {
		b.chunks = append(b.chunks, s)
		b.size += len(s)
	}
	return len(s), nil
}

// Write appends a copy of p. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.WriteString(string(p))
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return b.size }

// String joins and returns the contents. The joined result replaces the chunk
// list, so repeated reads do not copy again.
func (b *Buffer) String() string {
	switch len(b.chunks) {
	case 0:
		return ""
	case 1:
		return b.chunks[0]
	}
	var sb strings.Builder
	sb.Grow(b.size)
	for _, c := range b.chunks {
		sb.WriteString(c)
	}
	s := sb.String()
	b.chunks = append(b.chunks[:0], s)
	return s
}

// WriteTo writes the contents to w chunk by chunk.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, c := range b.chunks {
		m, err := io.WriteString(w, c)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ io.WriterTo     = (*Buffer)(nil)
)
