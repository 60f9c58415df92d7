package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grahms/tagmerge"
)

func Test_Map(t *testing.T) {
	t.Run("should report existing and missing properties", func(t *testing.T) {
		m := Map{"title": "T", "empty": ""}
		assert.True(t, m.Property("title").Exists())
		assert.True(t, m.Property("empty").Exists())
		assert.False(t, m.Property("missing").Exists())

		var sb strings.Builder
		n, err := m.Property("title").WriteTo(&sb)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
		assert.Equal(t, "T", sb.String())
	})

	t.Run("should merge into a template", func(t *testing.T) {
		out, err := tagmerge.Merge(`<t><sitemesh:write property="title">x</sitemesh:write></t>`,
			Static(Map{"title": "My Page"}), "sitemesh")
		require.NoError(t, err)
		assert.Equal(t, "<t>My Page</t>", out)
	})

	t.Run("should merge nothing from a nil static source", func(t *testing.T) {
		assert.Nil(t, Static(nil).ContentToMerge())
	})
}

func Test_FromYAML(t *testing.T) {
	t.Run("should flatten nested mappings and keep scalar text", func(t *testing.T) {
		m, err := FromYAML(strings.NewReader(`
title: My Page
version: 1.10
draft: ~
meta:
  description: About us
  og:
    image: /a.png
tags: [go, html]
base: &base hello
alias: *base
`))
		require.NoError(t, err)
		want := Map{
			"title":            "My Page",
			"version":          "1.10",
			"draft":            "",
			"meta.description": "About us",
			"meta.og.image":    "/a.png",
			"tags":             "go\nhtml",
			"base":             "hello",
			"alias":            "hello",
		}
		assert.Empty(t, cmp.Diff(want, m))
	})

	t.Run("should accept an empty document", func(t *testing.T) {
		m, err := FromYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("should reject a non-mapping document", func(t *testing.T) {
		_, err := FromYAML(strings.NewReader("- a\n- b\n"))
		assert.ErrorContains(t, err, "expected a mapping")
	})

	t.Run("should reject nested sequences", func(t *testing.T) {
		_, err := FromYAML(strings.NewReader("list:\n  - [a]\n"))
		assert.ErrorContains(t, err, "sequences may only hold scalars")
	})

	t.Run("should report syntax errors", func(t *testing.T) {
		_, err := FromYAML(strings.NewReader("a: [b"))
		assert.ErrorContains(t, err, "decoding YAML content")
	})
}

const page = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
  <head>
    <title> Release notes </title>
    <meta name="description" content="What changed"/>
    <link rel="stylesheet" href="a.css"/>
  </head>
  <body class="wide" onload="init()">
    <p>Version <b>2</b> ships today.</p>
  </body>
</html>`

func Test_FromXHTML(t *testing.T) {
	t.Run("should extract page properties", func(t *testing.T) {
		m, err := FromXHTML(strings.NewReader(page))
		require.NoError(t, err)
		assert.Equal(t, "Release notes", m["title"])
		assert.Equal(t, "What changed", m["meta.description"])
		assert.Equal(t, "wide", m["body.class"])
		assert.Equal(t, "init()", m["body.onload"])
		assert.Equal(t, "<p>Version <b>2</b> ships today.</p>", m["body"])
		assert.NotContains(t, m["head"], "title")
		assert.Contains(t, m["head"], `name="description"`)
		assert.Contains(t, m["head"], `href="a.css"`)
	})

	t.Run("should decorate a template with the page", func(t *testing.T) {
		m, err := FromXHTML(strings.NewReader(page))
		require.NoError(t, err)
		tmpl := `<h1><sitemesh:write property="title"/></h1><main><sitemesh:write property="body"/></main>`
		out, err := tagmerge.Merge(tmpl, Static(m), "sitemesh")
		require.NoError(t, err)
		assert.Equal(t, "<h1>Release notes</h1><main><p>Version <b>2</b> ships today.</p></main>", out)
	})

	t.Run("should report malformed pages", func(t *testing.T) {
		_, err := FromXHTML(strings.NewReader("<html><body></html>"))
		assert.ErrorContains(t, err, "parsing XHTML content")
	})
}
