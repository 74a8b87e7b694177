package content

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([^&\n?#]+)`),
}

// YouTubeID extracts the video id from watch, short-link, embed, and shorts URLs.
func YouTubeID(rawURL string) (string, bool) {
	for _, pattern := range youtubePatterns {
		if m := pattern.FindStringSubmatch(rawURL); len(m) == 2 {
			return m[1], true
		}
	}
	return "", false
}

var blockElements = map[string]bool{
	"p": true, "br": true, "div": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// PlainText flattens the service's rich-text HTML into paragraphs of plain text.
func PlainText(richText string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(richText))

	var (
		b    strings.Builder
		line strings.Builder
	)
	flush := func() {
		text := strings.Join(strings.Fields(line.String()), " ")
		line.Reset()
		if text == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			flush()
			return b.String()
		case html.TextToken:
			line.Write(tokenizer.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if blockElements[string(name)] {
				flush()
			}
		}
	}
}
