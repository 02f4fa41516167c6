package identity

import (
	"regexp"
	"strings"

	"github.com/agentstation/trophycase/pkg/constants"
)

var (
	dashRunes    = strings.NewReplacer("–", "-", "—", "-", "−", "-")
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
	spaceRuns    = regexp.MustCompile(`\s+`)
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)

// Sanitize converts a display title into a filesystem-safe path segment.
// It is deterministic and idempotent: sanitizing an already-sanitized string
// yields the same string. An input that sanitizes to nothing resolves to
// "Unknown".
//
// Rules, in order: trim surrounding quotes; normalize en/em dashes to
// hyphens; turn path separators and colons into " - "; turn underscores into
// spaces; replace any remaining path-illegal character with a space; collapse
// repeated hyphens and spaces; trim stray separators.
func Sanitize(title string) string {
	s := strings.TrimSpace(title)
	s = strings.Trim(s, `"'`)

	s = dashRunes.Replace(s)

	// Separators become " - " so "Game: Subtitle" reads as "Game - Subtitle".
	for _, sep := range []string{"/", "\\", ":"} {
		s = strings.ReplaceAll(s, sep, " - ")
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = illegalChars.ReplaceAllString(s, " ")

	s = hyphenRuns.ReplaceAllString(s, "-")
	s = spaceRuns.ReplaceAllString(s, " ")

	// Adjacent separator phrases like "a - - b" collapse to one.
	for {
		collapsed := strings.ReplaceAll(s, "- -", "-")
		if collapsed == s {
			break
		}
		s = collapsed
	}
	s = hyphenRuns.ReplaceAllString(s, "-")

	s = strings.Trim(s, " -.")

	if s == "" {
		return constants.UnknownSegment
	}
	return s
}
