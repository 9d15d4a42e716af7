// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"dnadotplot/core/dotplot"
	"dnadotplot/internal/output"
)

// RenderFunc serializes a matrix to w.
type RenderFunc func(w io.Writer, m *dotplot.Matrix) error

// Format names.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatText = "text"
)

var renderers = map[string]RenderFunc{}

func init() {
	Register(FormatPNG, output.WritePNG)
	Register(FormatSVG, output.WriteSVG)
	Register(FormatText, output.WriteText)
}

// Register installs fn under format (idempotent, last wins).
func Register(format string, fn RenderFunc) { renderers[format] = fn }

// Lookup returns the renderer for format.
func Lookup(format string) (RenderFunc, error) {
	fn, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("unknown render format %q (have %s)", format, strings.Join(Formats(), ", "))
	}
	return fn, nil
}

// Render dispatches to the renderer registered for format.
func Render(format string, w io.Writer, m *dotplot.Matrix) error {
	fn, err := Lookup(format)
	if err != nil {
		return err
	}
	return fn(w, m)
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(renderers))
	for k := range renderers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
