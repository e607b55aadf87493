package dispatch

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the visible text from a provider response. Some models
// answer in HTML fragments; the classifiers expect plain text. Plain-text
// input passes through with whitespace normalized.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return normalizeSpace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return normalizeSpace(s)
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
