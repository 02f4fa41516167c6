package parse

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Decode reverses the escaping layers scraped payloads commonly arrive with.
// Tooltip fragments are frequently double-encoded (HTML entities inside
// already-HTML-decoded strings), so entities are unescaped twice, and
// percent-escapes are decoded when present.
func Decode(s string) string {
	decoded := html.UnescapeString(html.UnescapeString(s))

	// PathUnescape rather than QueryUnescape: names may legitimately
	// contain "+".
	if strings.Contains(decoded, "%") {
		if unescaped, err := url.PathUnescape(decoded); err == nil {
			decoded = unescaped
		}
	}

	return decoded
}
