// core/dotplot/build.go
package dotplot

import (
	"bytes"

	"golang.org/x/sync/errgroup"

	"dnadotplot/core/window"
)

// DefaultWindow is the window length used when none is configured.
const DefaultWindow = 10

// Config holds the parameters of one matrix build.
type Config struct {
	Width             float64 // >1: cells per side; (0,1]: fraction of the longer sequence
	Window            int     // window length in symbols (>=1)
	ReverseComplement bool    // also record reverse-complement matches
	Workers           int     // <=1 scans serially
}

// Validate checks the window length. Width is checked by GridSize, which
// needs the sequence lengths.
func (c Config) Validate() error {
	if c.Window < 1 {
		return &ConfigError{Param: "window", Value: c.Window, Reason: "must be at least 1"}
	}
	return nil
}

// BuildMatrix scans every window pair of seq1 and seq2 on a single goroutine.
func BuildMatrix(seq1, seq2 []byte, width float64, win int, revcomp bool) (*Matrix, error) {
	return Build(seq1, seq2, Config{Width: width, Window: win, ReverseComplement: revcomp, Workers: 1})
}

// Build computes the match matrix of seq1 (x axis) against seq2 (y axis).
//
// For every pos1 in [0, len1-window] and pos2 in [0, len2-window] a forward
// match writes ForwardMatch at the scaled coordinate of (pos1, pos2); when
// enabled, a reverse-complement match then writes ReverseComplementMatch at
// the same cell. Writes replace earlier values, so the last write in scan
// order (pos1, then pos2, forward before reverse complement) wins. Parallel
// builds produce the same matrix as serial ones.
//
// The inputs are never modified.
func Build(seq1, seq2 []byte, cfg Config) (*Matrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size, err := GridSize(len(seq1), len(seq2), cfg.Width)
	if err != nil {
		return nil, err
	}
	m := NewMatrix(size, len(seq1), len(seq2))

	w := cfg.Window
	if len(seq1) < w || len(seq2) < w {
		return m, nil
	}

	s := newScanner(seq1, seq2, w, size, cfg.ReverseComplement)
	positions := len(seq1) - w + 1

	if cfg.Workers <= 1 {
		s.scan(m, 0, positions)
		return m, nil
	}

	var g errgroup.Group
	for _, r := range partition(positions, len(seq1), size, cfg.Workers) {
		r := r
		g.Go(func() error {
			s.scan(m, r.lo, r.hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

// scanner holds the read-only state shared by all workers of one build.
type scanner struct {
	s1, s2 []byte // upper-cased copies
	rc2    []byte // reverse complement of s2
	w      int
	size   int
	len1   int
	ys     []int // y coordinate per pos2
}

func newScanner(seq1, seq2 []byte, w, size int, revcomp bool) *scanner {
	s := &scanner{
		s1:   window.Fold(seq1),
		s2:   window.Fold(seq2),
		w:    w,
		size: size,
		len1: len(seq1),
	}
	if revcomp {
		s.rc2 = window.ReverseComplement(seq2)
	}
	s.ys = make([]int, len(seq2)-w+1)
	for p2 := range s.ys {
		s.ys[p2] = Coordinate(p2, len(seq2), size)
	}
	return s
}

// scan covers pos1 in [lo, hi). Comparing seq1[p1:p1+w] with
// rc2[n2-p2-w : n2-p2] is the reverse-complement test of
// window.MatchesReverseComplement on pre-folded input.
func (s *scanner) scan(m *Matrix, lo, hi int) {
	n2 := len(s.s2)
	last2 := n2 - s.w
	for p1 := lo; p1 < hi; p1++ {
		x := Coordinate(p1, s.len1, s.size)
		if x < 0 || x >= s.size {
			continue
		}
		a := s.s1[p1 : p1+s.w]
		for p2 := 0; p2 <= last2; p2++ {
			y := s.ys[p2]
			if y >= s.size {
				continue
			}
			if bytes.Equal(a, s.s2[p2:p2+s.w]) {
				m.cells[y*s.size+x] = ForwardMatch
			}
			if s.rc2 != nil && bytes.Equal(a, s.rc2[n2-p2-s.w:n2-p2]) {
				m.cells[y*s.size+x] = ReverseComplementMatch
			}
		}
	}
}

type span struct{ lo, hi int }

// partition splits [0, positions) into at most parts contiguous spans such
// that no grid column receives writes from two spans. Coordinate is
// monotonic in the position, so it is enough to move every boundary forward
// until it starts a new column.
func partition(positions, len1, size, parts int) []span {
	if parts > positions {
		parts = positions
	}
	if parts <= 1 {
		return []span{{0, positions}}
	}
	out := make([]span, 0, parts)
	lo := 0
	for k := 1; k < parts; k++ {
		b := k * positions / parts
		if b < lo {
			b = lo
		}
		for b > 0 && b < positions && Coordinate(b, len1, size) == Coordinate(b-1, len1, size) {
			b++
		}
		if b > lo {
			out = append(out, span{lo, b})
			lo = b
		}
	}
	if lo < positions {
		out = append(out, span{lo, positions})
	}
	return out
}
