package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text strips HTML from feed content, returning plain text with
// entities decoded and whitespace collapsed to single spaces. Input
// that is already plain text passes through unchanged apart from
// whitespace normalization.
func Text(html string) string {
	if html == "" {
		return ""
	}

	text := html
	if strings.ContainsAny(html, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err == nil {
			// Drop script/style bodies before extracting text.
			doc.Find("script, style").Remove()
			text = doc.Text()
		}
	}

	return strings.Join(strings.Fields(text), " ")
}
