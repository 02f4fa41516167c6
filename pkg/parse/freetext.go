package parse

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/agentstation/trophycase/pkg/achievements"
)

// lineKeywordPattern gates which lines of a free-text file are inspected at
// all. The keyword must start a word so that "cache" or "machine" do not
// match "ach".
var lineKeywordPattern = regexp.MustCompile(`(^|[^a-z])(ach|unlock|troph)`)

// bracketPrefixPattern matches a leading [timestamp] block on a log line.
var bracketPrefixPattern = regexp.MustCompile(`^\[[^\]]*\]\s*`)

// unlockTokens mark a matched line as unlocked.
var unlockTokens = []string{"unlocked", "[x]", "achieved"}

// FreeText scans a log-style text payload line by line. A line must contain
// an achievement keyword; the name is a quoted substring when present, else
// the text after the first ":" or "-" delimiter.
func FreeText(payload []byte) []achievements.Achievement {
	var list []achievements.Achievement

	scanner := bufio.NewScanner(bytes.NewReader(payload))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if !lineKeywordPattern.MatchString(lower) {
			continue
		}

		name := extractLineName(line)
		if name == "" {
			continue
		}

		list = append(list, achievements.Achievement{
			Name:     Decode(name),
			Unlocked: containsAny(lower, unlockTokens),
		})
	}
	return list
}

// extractLineName pulls the achievement name out of one log line.
func extractLineName(line string) string {
	// A quoted substring is the most reliable signal.
	for _, quote := range []string{`"`, "'"} {
		if start := strings.Index(line, quote); start >= 0 {
			rest := line[start+1:]
			if end := strings.Index(rest, quote); end > 0 {
				return strings.TrimSpace(rest[:end])
			}
		}
	}

	// Fall back to text after the first delimiter, skipping any leading
	// [timestamp] block so its dashes and colons do not count.
	line = bracketPrefixPattern.ReplaceAllString(line, "")
	if idx := strings.IndexAny(line, ":-"); idx >= 0 && idx < len(line)-1 {
		name := strings.TrimSpace(line[idx+1:])
		// Strip trailing state tokens like "... unlocked".
		for _, token := range unlockTokens {
			if cut := strings.Index(strings.ToLower(name), token); cut >= 0 {
				name = strings.TrimSpace(name[:cut])
			}
		}
		return name
	}
	return ""
}

// containsAny reports whether s contains any of the tokens.
func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
