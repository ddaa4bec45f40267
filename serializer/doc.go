// Package serializer provides format selection and payload serialization.
//
// This package is organized into:
// - format.go: the Format enumeration and the string parse boundary
// - serializer.go: the Serializer interface and the factory
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
// - provider.go: compact/readable serializer families
//
// XML serialization is done manually for precise control over output format.
package serializer
