package parse

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/agentstation/trophycase/pkg/achievements"
)

// Date patterns tried in order against decoded tooltip text.
var (
	longDatePattern = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`)
	isoDatePattern  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	dmyDatePattern  = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
)

// unlockMarkers are class/src tokens whose presence marks an item unlocked
// even when no date is visible. Tokens like "achieved" are deliberately
// absent: they collide with class names such as "achieveDesc".
var unlockMarkers = []string{"unlocked", "unlock_icon", "earned"}

// Markup parses a scraped page or fragment for achievement list items. An
// item's name comes from its title link, its description from the decoded
// tooltip (preferring paragraph text) or a sibling description block, and its
// unlock state from tooltip date extraction or an unlock icon.
func Markup(payload []byte) []achievements.Achievement {
	root, err := html.Parse(strings.NewReader(string(payload)))
	if err != nil {
		return nil
	}

	var list []achievements.Achievement
	walkNodes(root, func(n *html.Node) {
		if !isAchievementItem(n) {
			return
		}
		if a, ok := markupItem(n); ok {
			list = append(list, a)
		}
	})
	return list
}

// UnlockFromMarkup analyses one decoded tooltip fragment. It returns the
// unlock date text, if any, and whether the fragment marks the achievement
// unlocked. The first <span> or <time> text wins as the date; otherwise the
// decoded text is searched for a long-form month/day/year, then ISO
// YYYY-MM-DD, then D/M/Y.
func UnlockFromMarkup(fragment string) (date string, unlocked bool) {
	decoded := Decode(fragment)

	if node, err := html.Parse(strings.NewReader(decoded)); err == nil {
		walkNodes(node, func(n *html.Node) {
			if date != "" || n.Type != html.ElementNode {
				return
			}
			if n.Data == "span" || n.Data == "time" {
				if text := strings.TrimSpace(nodeText(n)); text != "" {
					date = text
				}
			}
		})
		if hasUnlockMarker(node) {
			unlocked = true
		}
	}

	// A span may hold arbitrary text; keep it only when it contains a
	// recognizable date, else fall back to scanning the whole fragment.
	if date != "" && matchDate(date) == "" {
		date = ""
	}
	if date == "" {
		date = matchDate(decoded)
	}

	if date != "" {
		unlocked = true
	}
	return date, unlocked
}

// matchDate returns the first recognizable date substring.
func matchDate(text string) string {
	for _, pattern := range []*regexp.Regexp{longDatePattern, isoDatePattern, dmyDatePattern} {
		if m := pattern.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// isAchievementItem reports whether a node looks like one achievement entry.
func isAchievementItem(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "li", "div", "tr":
	default:
		return false
	}
	marker := strings.ToLower(attrValue(n, "class") + " " + attrValue(n, "id"))
	return strings.Contains(marker, "achieve") || strings.Contains(marker, "trophy")
}

// markupItem extracts one record from an achievement list item.
func markupItem(n *html.Node) (achievements.Achievement, bool) {
	a := achievements.Achievement{}

	// Name: first title link, else first anchor, else heading text.
	if link := findNode(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode && c.Data == "a" &&
			strings.Contains(strings.ToLower(attrValue(c, "class")), "title")
	}); link != nil {
		a.Name = strings.TrimSpace(nodeText(link))
	} else if link := findNode(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode && c.Data == "a"
	}); link != nil {
		a.Name = strings.TrimSpace(nodeText(link))
	} else if heading := findNode(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode && (c.Data == "h3" || c.Data == "h4" || c.Data == "strong")
	}); heading != nil {
		a.Name = strings.TrimSpace(nodeText(heading))
	}

	a.Name = Decode(a.Name)
	if a.Name == "" {
		return a, false
	}

	tooltip := tooltipAttr(n)

	// Description: paragraph text inside the decoded tooltip, else a
	// description block within the item.
	if tooltip != "" {
		a.Description = tooltipDescription(tooltip)
	}
	if a.Description == "" {
		if desc := findNode(n, func(c *html.Node) bool {
			return c.Type == html.ElementNode &&
				strings.Contains(strings.ToLower(attrValue(c, "class")), "desc")
		}); desc != nil {
			a.Description = Decode(strings.TrimSpace(nodeText(desc)))
		}
	}

	if date, unlocked := UnlockFromMarkup(tooltip); unlocked {
		a.Unlocked = true
		a.DateUnlocked = date
	} else if hasUnlockMarker(n) {
		a.Unlocked = true
	}

	if img := findNode(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode && c.Data == "img"
	}); img != nil {
		a.Icon = attrValue(img, "src")
	}

	for _, attr := range []string{"data-percent", "data-rarity", "percent"} {
		if v := attrValue(n, attr); v != "" {
			a.Percent = parseFloat(v)
			break
		}
	}

	return a, true
}

// tooltipDescription pulls description text from a decoded tooltip fragment,
// preferring text inside a paragraph tag.
func tooltipDescription(tooltip string) string {
	decoded := Decode(tooltip)
	node, err := html.Parse(strings.NewReader(decoded))
	if err != nil {
		return strings.TrimSpace(decoded)
	}
	if p := findNode(node, func(c *html.Node) bool {
		return c.Type == html.ElementNode && c.Data == "p"
	}); p != nil {
		return strings.TrimSpace(nodeText(p))
	}
	return strings.TrimSpace(nodeText(node))
}

// tooltipAttr returns the first tooltip-carrying attribute on the node or its
// descendants.
func tooltipAttr(n *html.Node) string {
	var tooltip string
	walkNodes(n, func(c *html.Node) {
		if tooltip != "" || c.Type != html.ElementNode {
			return
		}
		for _, attr := range c.Attr {
			key := strings.ToLower(attr.Key)
			if strings.Contains(key, "tooltip") || key == "title" {
				if strings.TrimSpace(attr.Val) != "" {
					tooltip = attr.Val
					return
				}
			}
		}
	})
	return tooltip
}

// hasUnlockMarker reports whether the subtree carries an unlock icon marker
// in a class or image source.
func hasUnlockMarker(n *html.Node) bool {
	found := false
	walkNodes(n, func(c *html.Node) {
		if found || c.Type != html.ElementNode {
			return
		}
		marker := strings.ToLower(attrValue(c, "class") + " " + attrValue(c, "src"))
		for _, token := range unlockMarkers {
			if strings.Contains(marker, token) {
				found = true
				return
			}
		}
	})
	return found
}
