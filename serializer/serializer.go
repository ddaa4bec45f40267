package serializer

// Serializer converts structured data to a textual representation.
// Implementations are stateless and safe for concurrent use.
type Serializer interface {
	Serialize(v any) ([]byte, error)
	Format() Format
	ContentType() string
}

// New maps a format identifier to a freshly constructed Serializer.
// Each call allocates a new instance; nothing is cached or shared between
// calls. Unrecognized identifiers fail with *UnsupportedFormatError.
func New(format string) (Serializer, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return f.New(), nil
}

// New constructs a compact serializer for the format.
func (f Format) New() Serializer {
	if f == FormatXML {
		return &XMLSerializer{}
	}
	return &JSONSerializer{}
}
