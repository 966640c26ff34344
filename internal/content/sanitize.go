package content

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	scriptExpr  = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)
	commentExpr = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// ParseContent strips <script> blocks and HTML comments from CMS markup.
// Everything else passes through untouched, so the CMS must be trusted.
//
// Stripping repeats until nothing changes: removing one block can splice the
// surrounding text into a new one.
func ParseContent(html string) string {
	if html == "" {
		return ""
	}

	for {
		cleaned := scriptExpr.ReplaceAllString(html, "")
		cleaned = commentExpr.ReplaceAllString(cleaned, "")
		if cleaned == html {
			return cleaned
		}
		html = cleaned
	}
}

// PlainText renders an HTML fragment as whitespace-collapsed text with entities decoded.
func PlainText(html string) string {
	html = ParseContent(html)
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Initials concatenates the first letter of every word in title.
func Initials(title string) string {
	var b strings.Builder
	for _, word := range strings.Fields(title) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate shortens text to at most limit runes, cutting at a word boundary
// and appending an ellipsis when anything was dropped.
func Truncate(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:limit])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
