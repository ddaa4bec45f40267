package serializer

import (
	"github.com/goccy/go-json"
)

// JSONSerializer serializes values to JSON. The zero value produces
// compact output; a non-empty indent produces readable output.
type JSONSerializer struct {
	indent string
}

func (s *JSONSerializer) Serialize(v any) ([]byte, error) {
	if s.indent != "" {
		return json.MarshalIndent(v, "", s.indent)
	}
	return json.Marshal(v)
}

func (s *JSONSerializer) Format() Format { return FormatJSON }

func (s *JSONSerializer) ContentType() string { return "application/json" }
