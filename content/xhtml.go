package content

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

var (
	headExpr  = xpath.MustCompile(`/*[local-name()='html']/*[local-name()='head']`)
	bodyExpr  = xpath.MustCompile(`/*[local-name()='html']/*[local-name()='body']`)
	titleExpr = xpath.MustCompile(`*[local-name()='title']`)
	metaExpr  = xpath.MustCompile(`*[local-name()='meta'][@name]`)
)

// FromXHTML parses a well-formed XHTML page into a Map with the properties
//
//	title        text of head/title
//	head         markup inside head, title excluded
//	body         markup inside body
//	meta.<name>  content attribute of each named meta tag
//	body.<attr>  attributes of the body element
func FromXHTML(r io.Reader) (Map, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XHTML content: %w", err)
	}

	m := Map{}
	if head := xmlquery.QuerySelector(doc, headExpr); head != nil {
		if title := xmlquery.QuerySelector(head, titleExpr); title != nil {
			m["title"] = strings.TrimSpace(title.InnerText())
		}
		for _, meta := range xmlquery.QuerySelectorAll(head, metaExpr) {
			m["meta."+meta.SelectAttr("name")] = meta.SelectAttr("content")
		}
		m["head"] = innerXML(head, "title")
	}
	if body := xmlquery.QuerySelector(doc, bodyExpr); body != nil {
		for _, a := range body.Attr {
			m["body."+a.Name.Local] = a.Value
		}
		m["body"] = innerXML(body, "")
	}
	return m, nil
}

// innerXML serializes the children of n, skipping elements named skip.
func innerXML(n *xmlquery.Node, skip string) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if skip != "" && c.Type == xmlquery.ElementNode && c.Data == skip {
			continue
		}
		sb.WriteString(c.OutputXML(true))
	}
	return strings.TrimSpace(sb.String())
}
