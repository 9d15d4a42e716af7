// internal/output/text.go
package output

import (
	"bufio"
	"io"

	"dnadotplot/core/dotplot"
)

// Symbols of the text rendering.
const (
	SymbolNoMatch           = '.'
	SymbolForward           = '#'
	SymbolReverseComplement = '+'
)

// Symbol maps a cell to its text symbol.
func Symbol(c dotplot.Cell) byte {
	switch c {
	case dotplot.ForwardMatch:
		return SymbolForward
	case dotplot.ReverseComplementMatch:
		return SymbolReverseComplement
	}
	return SymbolNoMatch
}

// WriteText prints one line per matrix row, top row first.
func WriteText(w io.Writer, m *dotplot.Matrix) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, m.Size+1)
	line[m.Size] = '\n'
	for y := 0; y < m.Size; y++ {
		for x, c := range m.Row(y) {
			line[x] = Symbol(c)
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
