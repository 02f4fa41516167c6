// Package parse maps raw provider payloads into normalized achievement
// records. Each payload shape gets its own parser; there is no universal
// parser with deep conditional branching. Parsers are pure, never fail the
// whole batch for one malformed record, and may return an empty list.
package parse

import (
	"slices"

	"github.com/agentstation/trophycase/pkg/achievements"
)

// Shape declares how a raw payload is structured, selected by the provider
// that produced it.
type Shape string

const (
	// ShapeArray is an array of record objects.
	ShapeArray Shape = "array"
	// ShapeKeyed is an object whose keys are achievement names and whose
	// values carry earned state.
	ShapeKeyed Shape = "keyed"
	// ShapeMarkup is an HTML fragment, typically a scraped tooltip.
	ShapeMarkup Shape = "markup"
	// ShapeFreeText is an unstructured log or text file.
	ShapeFreeText Shape = "freetext"
	// ShapeTagTree is a generic tag tree (XML-ish save data).
	ShapeTagTree Shape = "tagtree"
)

// String returns the string representation of a shape.
func (s Shape) String() string {
	return string(s)
}

// Shapes returns all defined payload shapes.
func Shapes() []Shape {
	return []Shape{ShapeArray, ShapeKeyed, ShapeMarkup, ShapeFreeText, ShapeTagTree}
}

// IsValid returns true if the shape is one of the defined constants.
func (s Shape) IsValid() bool {
	return slices.Contains(Shapes(), s)
}

// Payload parses a raw payload according to its declared shape. Unknown
// shapes yield nil.
func Payload(shape Shape, payload []byte) []achievements.Achievement {
	switch shape {
	case ShapeArray:
		return Array(payload)
	case ShapeKeyed:
		return Keyed(payload)
	case ShapeMarkup:
		return Markup(payload)
	case ShapeFreeText:
		return FreeText(payload)
	case ShapeTagTree:
		return TagTree(payload)
	default:
		return nil
	}
}
