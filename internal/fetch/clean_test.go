package fetch

import (
	"strings"
	"testing"
)

func TestTextStripsHTML(t *testing.T) {
	html := `<p>Hello <b>world</b></p><p>Second paragraph.</p>`
	got := Text(html)
	if got != "Hello world Second paragraph." {
		t.Errorf("got %q", got)
	}
}

func TestTextRemovesScriptAndStyle(t *testing.T) {
	html := `<style>body { color: red }</style><p>Visible</p><script>alert("no")</script>`
	got := Text(html)
	if got != "Visible" {
		t.Errorf("got %q, want just the visible text", got)
	}
}

func TestTextDecodesEntities(t *testing.T) {
	got := Text("Fish &amp; Chips &mdash; a review")
	if !strings.HasPrefix(got, "Fish & Chips") {
		t.Errorf("got %q, want decoded ampersand", got)
	}
}

func TestTextCollapsesWhitespace(t *testing.T) {
	got := Text("plain   text\n\twith \n gaps")
	if got != "plain text with gaps" {
		t.Errorf("got %q", got)
	}
}

func TestTextPlainPassthrough(t *testing.T) {
	if got := Text("already clean"); got != "already clean" {
		t.Errorf("got %q", got)
	}
	if got := Text(""); got != "" {
		t.Errorf("empty input produced %q", got)
	}
}

func TestArticleIDStable(t *testing.T) {
	a := articleID("https://example.com/story")
	b := articleID("https://example.com/story")
	c := articleID("https://example.com/other")

	if a != b {
		t.Errorf("same URL gave different ids: %s, %s", a, b)
	}
	if a == c {
		t.Error("different URLs gave the same id")
	}
	if len(a) != 16 {
		t.Errorf("id length %d, want 16", len(a))
	}
}
