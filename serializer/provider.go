package serializer

// Provider creates the compact and readable serializer variants of a
// single format family.
type Provider interface {
	Compact() Serializer
	Readable() Serializer
}

// JSONProvider creates JSON serializers. Readable output is indented
// with four spaces.
type JSONProvider struct{}

func (JSONProvider) Compact() Serializer { return &JSONSerializer{} }

func (JSONProvider) Readable() Serializer { return &JSONSerializer{indent: "    "} }

// XMLProvider creates XML serializers. Readable output is indented with
// two spaces.
type XMLProvider struct{}

func (XMLProvider) Compact() Serializer { return &XMLSerializer{} }

func (XMLProvider) Readable() Serializer { return &XMLSerializer{indent: "  "} }

// NewProvider maps a format identifier to the provider for that family,
// under the same parse contract as New.
func NewProvider(format string) (Provider, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == FormatXML {
		return XMLProvider{}, nil
	}
	return JSONProvider{}, nil
}
