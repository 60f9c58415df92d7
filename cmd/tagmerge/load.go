package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grahms/tagmerge"
	"github.com/grahms/tagmerge/content"
)

// loadSource reads the content document at path. An empty path merges nothing.
func loadSource(path, format string) (tagmerge.ContentSource, error) {
	if path == "" {
		return content.Static(nil), nil
	}
	if format == "" || format == "auto" {
		format = detectFormat(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content: %w", err)
	}
	defer f.Close()

	var m content.Map
	switch format {
	case "yaml":
		m, err = content.FromYAML(f)
	case "xhtml":
		m, err = content.FromXHTML(f)
	default:
		return nil, fmt.Errorf("unknown content format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return content.Static(m), nil
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".xhtml", ".html", ".htm", ".xml":
		return "xhtml"
	}
	return ""
}
