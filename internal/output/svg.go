// internal/output/svg.go
package output

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"dnadotplot/core/dotplot"
)

// SVG layout, in user units before scaling.
const (
	svgMargin = 80.0
	svgPlot   = 400.0
	svgSize   = svgPlot + 2*svgMargin
	svgTicks  = 9
	dotRadius = 0.8

	// svgo takes integer coordinates; drawing at ten times the size under a
	// matching viewBox keeps one decimal of precision.
	svgUnit = 10
)

const (
	ColorForward           = "#ff0000"
	ColorReverseComplement = "#008000"
)

func su(f float64) int { return int(math.Round(f * svgUnit)) }

// errWriter records the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws the matrix as a dot plot with labelled axes. Forward
// matches are red, reverse-complement matches green. Axis labels are
// sequence positions rounded down to a multiple of ten.
func WriteSVG(w io.Writer, m *dotplot.Matrix) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	side := su(svgSize)
	canvas.Startview(int(svgSize), int(svgSize), 0, 0, side, side)
	canvas.Def()
	canvas.Style("text/css", fmt.Sprintf(`
.axis { stroke: #000; stroke-width: %d; }
.grid { stroke: #ccc; stroke-width: %d; }
.label { font-family: Arial, sans-serif; font-size: %dpx; fill: #000; }
.title { font-family: Arial, sans-serif; font-size: %dpx; fill: #000; text-anchor: middle; }
`, su(1), su(0.5), su(12), su(14)))
	canvas.DefEnd()

	canvas.Rect(0, 0, side, side, "fill:white")
	canvas.Rect(su(svgMargin), su(svgMargin), su(svgPlot), su(svgPlot),
		fmt.Sprintf("fill:white;stroke:#000;stroke-width:%d", su(1)))

	canvas.Gid("dots")
	for y := 0; y < m.Size; y++ {
		for x, c := range m.Row(y) {
			if c == dotplot.NoMatch {
				continue
			}
			color := ColorForward
			if c == dotplot.ReverseComplementMatch {
				color = ColorReverseComplement
			}
			cx := svgMargin + float64(x)/float64(m.Size)*svgPlot
			cy := svgMargin + float64(y)/float64(m.Size)*svgPlot
			canvas.Circle(su(cx), su(cy), su(dotRadius), "fill:"+color)
		}
	}
	canvas.Gend()

	canvas.Gid("axes")
	bottom := svgMargin + svgPlot
	for i := 0; i <= svgTicks; i++ {
		frac := float64(i) / svgTicks
		pos := svgMargin + frac*svgPlot

		// x axis
		canvas.Line(su(pos), su(bottom), su(pos), su(bottom+5), `class="axis"`)
		if i > 0 && i < svgTicks {
			canvas.Line(su(pos), su(svgMargin), su(pos), su(bottom), `class="grid"`)
		}
		canvas.Text(su(pos), su(bottom+20), tickLabel(frac, m.Len1), `class="label"`, `text-anchor="middle"`)

		// y axis
		canvas.Line(su(svgMargin-5), su(pos), su(svgMargin), su(pos), `class="axis"`)
		if i > 0 && i < svgTicks {
			canvas.Line(su(svgMargin), su(pos), su(bottom), su(pos), `class="grid"`)
		}
		canvas.Text(su(svgMargin-10), su(pos+4), tickLabel(frac, m.Len2), `class="label"`, `text-anchor="end"`)
	}

	mid := svgMargin + svgPlot/2
	canvas.Text(su(mid), su(svgSize-20), "Sequence 1 (nucleotide position)", `class="title"`)
	canvas.Text(su(20), su(mid), "Sequence 2 (nucleotide position)", `class="title"`,
		fmt.Sprintf(`transform="rotate(-90 %d %d)"`, su(20), su(mid)))
	canvas.Gend()

	canvas.End()
	return ew.err
}

func tickLabel(frac float64, seqLen int) string {
	pos := int(frac * float64(seqLen))
	return fmt.Sprint(pos / 10 * 10)
}
