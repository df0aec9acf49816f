package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// URLs kept as-is by NormalizeURL
var regexAbsoluteURL = regexp.MustCompile(`^(https?://|mailto:|tel:)`)

type Link struct {
	Text  string
	URL   string
	Title string
}

// String returns the link in the standard [text](url "title") syntax.
func (l Link) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`[%s](%s`, l.Text, l.URL))
	if l.Title != "" {
		sb.WriteString(fmt.Sprintf(` "%s"`, l.Title))
	}
	sb.WriteString(")")
	return sb.String()
}

// NormalizeURL prefixes bare URLs with https://.
// URLs starting with "/" (including protocol-relative ones) are kept as-is.
//
// Ex:
//
//	naver.com           => https://naver.com
//	//naver.com         => //naver.com
//	https://naver.com   => https://naver.com
//	mailto:me@naver.com => mailto:me@naver.com
//	/notes/1            => /notes/1
//	#section            => #section
func NormalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return url
	}
	if regexAbsoluteURL.MatchString(url) {
		return url
	}
	if strings.HasPrefix(url, "#") || strings.HasPrefix(url, "/") {
		return url
	}
	return "https://" + url
}
