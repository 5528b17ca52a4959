package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// textReplacer applies the source-side cleanup the tagger expects:
// one-line text, straight quotes, spelled-out numeric abbreviations.
var textReplacer = strings.NewReplacer(
	"\n", " ",
	"«", `"`,
	"»", `"`,
	"“", `"`,
	"”", `"`,
	"•", "",
	"mln.", "milyon",
	"mlrd.", "milyard",
)

// Preprocess normalizes raw article text before tagging. Span offsets
// index the cleaned text, so callers must keep the cleaned form.
func Preprocess(text string) string {
	return strings.Join(strings.Fields(textReplacer.Replace(text)), " ")
}

// ExtractText returns the visible text of an HTML document, with
// script, style and noscript content dropped.
func ExtractText(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sb.String()
}
