package tagmerge

import "io"

// ContentSource supplies the document whose properties are merged into the
// one being processed.
type ContentSource interface {
	// ContentToMerge returns nil when there is nothing to merge.
	ContentToMerge() Content
}

// ContentSourceFunc adapts a function to the ContentSource interface.
type ContentSourceFunc func() Content

func (f ContentSourceFunc) ContentToMerge() Content { return f() }

// Content is a parsed document exposing named properties.
type Content interface {
	// Property never returns nil; absent properties report Exists() == false.
	Property(name string) Property
}

// Property is a named value of a Content. WriteTo serializes the value
// straight into a sink.
type Property interface {
	Exists() bool
	io.WriterTo
}
