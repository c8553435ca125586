package mailer

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// HasHTML reports whether body contains anything shaped like an HTML tag
func HasHTML(body string) bool {
	return tagPattern.MatchString(body)
}

// StripTags returns the text content of an HTML fragment.
// Script and style contents are dropped.
func StripTags(body string) string {
	z := html.NewTokenizer(strings.NewReader(body))
	var (
		b    strings.Builder
		skip int
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.StartTagToken:
			if name, _ := z.TagName(); isRawTextTag(name) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isRawTextTag(name) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name []byte) bool {
	s := string(name)
	return s == "script" || s == "style"
}
