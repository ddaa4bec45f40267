package serializer

import "strconv"

// Format identifies a supported serialization format. The set is closed:
// values outside the declared constants never leave ParseFormat.
type Format int

const (
	FormatJSON Format = iota
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	}
	return "unknown"
}

// UnsupportedFormatError is returned when a format identifier does not
// match any supported format. It retains the offending value for
// diagnostics.
type UnsupportedFormatError struct {
	Value string
}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported serializer format: " + strconv.Quote(e.Value)
}

// ParseFormat converts an external format identifier into a Format.
// Matching is exact: only the literals "json" and "xml" are accepted,
// with no trimming or case folding.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	}
	return 0, &UnsupportedFormatError{Value: s}
}
