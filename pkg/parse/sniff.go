package parse

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// ShapeForFile picks the parser shape for a discovered file from its
// extension, falling back to content sniffing for ambiguous ones. JSON files
// are arrays or keyed objects depending on their first token.
func ShapeForFile(path string, data []byte) Shape {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return sniffJSON(data)
	case ".xml":
		return ShapeTagTree
	case ".html", ".htm":
		return ShapeMarkup
	case ".ini", ".txt", ".log", ".dat", ".cfg":
		return ShapeFreeText
	default:
		return sniffContent(data)
	}
}

// sniffJSON distinguishes array payloads from keyed objects. An object whose
// wrapper key holds an array is still array-shaped.
func sniffJSON(data []byte) Shape {
	trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return ShapeArray
	}
	doc := gjson.ParseBytes(trimmed)
	for _, wrapper := range wrapperKeys {
		if doc.Get(wrapper).IsArray() {
			return ShapeArray
		}
	}
	return ShapeKeyed
}

// sniffContent guesses a shape for extensionless files.
func sniffContent(data []byte) Shape {
	trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF")
	if len(trimmed) == 0 {
		return ShapeFreeText
	}
	switch trimmed[0] {
	case '[':
		return ShapeArray
	case '{':
		return ShapeKeyed
	case '<':
		return ShapeTagTree
	default:
		return ShapeFreeText
	}
}
