package parse

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/agentstation/trophycase/pkg/achievements"
)

// TagTree walks a generic tag tree (XML-ish save data) for nodes whose tag
// name contains "ach". Name, description, and unlock state are read from
// child elements or attributes whose names contain "name", "desc", and
// "unlock" respectively.
func TagTree(payload []byte) []achievements.Achievement {
	root, err := html.Parse(strings.NewReader(string(payload)))
	if err != nil {
		return nil
	}

	var list []achievements.Achievement
	walkNodes(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if !strings.Contains(strings.ToLower(n.Data), "ach") {
			return
		}
		if a, ok := tagTreeNode(n); ok {
			list = append(list, a)
		}
	})
	return list
}

// tagTreeNode reads one achievement element's fields from its attributes and
// immediate children.
func tagTreeNode(n *html.Node) (achievements.Achievement, bool) {
	a := achievements.Achievement{
		Name:        tagField(n, "name"),
		Description: tagField(n, "desc"),
	}

	if unlockText := tagField(n, "unlock"); unlockText != "" {
		lower := strings.ToLower(unlockText)
		a.Unlocked = lower == "true" || lower == "1" || lower == "yes"
		if !a.Unlocked && matchDate(unlockText) != "" {
			a.Unlocked = true
			a.DateUnlocked = unlockText
		}
	}

	a.Name = Decode(a.Name)
	if a.Name == "" {
		return a, false
	}
	a.Description = Decode(a.Description)
	return a, true
}

// tagField finds a value for the logical field: first a matching attribute on
// the element itself, then the text of a child element whose tag contains the
// substring.
func tagField(n *html.Node, substring string) string {
	for _, attr := range n.Attr {
		if strings.Contains(strings.ToLower(attr.Key), substring) {
			return strings.TrimSpace(attr.Val)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if strings.Contains(strings.ToLower(c.Data), substring) {
			return strings.TrimSpace(nodeText(c))
		}
	}
	return ""
}
