// internal/encodeutil/encode.go
package encodeutil

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeYAML writes v as a YAML document to w.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// FormatForPath picks "json" or "yaml" from a file extension. Paths without
// a recognised extension default to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

// Encode writes v in the named format ("json" or "yaml").
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		return EncodePretty(w, v)
	case "yaml":
		return EncodeYAML(w, v)
	}
	return fmt.Errorf("unknown encoding %q", format)
}
