package render

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// HTMLToText reduces an HTML error page (as served by reverse proxies in
// front of the backend) to its visible text. Input that does not look like
// markup is returned trimmed.
func HTMLToText(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "<") {
		return raw
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))
	var parts []string
	var skip int

	for {
		tt := tokenizer.Next()
		switch tt {
		case xhtml.ErrorToken:
			return strings.Join(parts, " ")

		case xhtml.StartTagToken:
			switch tokenizer.Token().Data {
			case "script", "style", "head":
				skip++
			}

		case xhtml.EndTagToken:
			switch tokenizer.Token().Data {
			case "script", "style", "head":
				if skip > 0 {
					skip--
				}
			}

		case xhtml.TextToken:
			if skip > 0 {
				continue
			}
			text := strings.Join(strings.Fields(tokenizer.Token().Data), " ")
			if text != "" {
				parts = append(parts, text)
			}
		}
	}
}

// Summarize returns HTMLToText(raw) cut to at most max runes.
func Summarize(raw string, max int) string {
	s := HTMLToText(raw)
	r := []rune(s)
	if max > 3 && len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}
