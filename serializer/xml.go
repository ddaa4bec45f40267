package serializer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// XMLSerializer serializes values to XML. The zero value produces compact
// output; a non-empty indent produces readable output.
//
// A map with exactly one key serializes with that key as the document
// root; any other value is wrapped in a <data> root. List entries render
// as <{parent}_item index="i"> elements. Map keys are emitted in sorted
// order so output is deterministic.
type XMLSerializer struct {
	indent string
}

func (s *XMLSerializer) Serialize(v any) ([]byte, error) {
	tree, err := normalizeTree(v)
	if err != nil {
		return nil, fmt.Errorf("xml serialize: %w", err)
	}
	root, body := splitRoot(tree)
	var b strings.Builder
	w := &xmlWriter{b: &b, indent: s.indent}
	w.writeElement(root, "", body, 0)
	out := strings.TrimSuffix(b.String(), "\n")
	return []byte(out), nil
}

func (s *XMLSerializer) Format() Format { return FormatXML }

func (s *XMLSerializer) ContentType() string { return "application/xml" }

// normalizeTree reduces arbitrary values to the map/slice/scalar shape the
// writer walks. Containers round-trip through JSON so struct payloads
// serialize by their field tags and unserializable values are rejected up
// front.
func normalizeTree(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, int, int64, float64:
		return v, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func splitRoot(tree any) (string, any) {
	if m, ok := tree.(map[string]any); ok && len(m) == 1 {
		for k, v := range m {
			return k, v
		}
	}
	return "data", tree
}

type xmlWriter struct {
	b      *strings.Builder
	indent string
}

func (w *xmlWriter) writeElement(tag, attrs string, v any, depth int) {
	w.pad(depth)
	w.b.WriteString("<")
	w.b.WriteString(tag)
	w.b.WriteString(attrs)
	w.b.WriteString(">")
	switch val := v.(type) {
	case map[string]any:
		w.newline()
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.writeElement(k, "", val[k], depth+1)
		}
		w.pad(depth)
	case []any:
		w.newline()
		for i, item := range val {
			attr := ` index="` + strconv.Itoa(i) + `"`
			w.writeElement(tag+"_item", attr, item, depth+1)
		}
		w.pad(depth)
	default:
		w.b.WriteString(xmlEscape(scalarString(val)))
	}
	w.b.WriteString("</")
	w.b.WriteString(tag)
	w.b.WriteString(">")
	w.newline()
}

func (w *xmlWriter) pad(depth int) {
	if w.indent != "" {
		w.b.WriteString(strings.Repeat(w.indent, depth))
	}
}

func (w *xmlWriter) newline() {
	if w.indent != "" {
		w.b.WriteByte('\n')
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
