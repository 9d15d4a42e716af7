package dotplot

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dnadotplot/core/window"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// naive builds the matrix straight from the window matcher, without any of
// the shortcuts Build takes.
func naive(seq1, seq2 []byte, width float64, w int, revcomp bool) *Matrix {
	size, err := GridSize(len(seq1), len(seq2), width)
	if err != nil {
		panic(err)
	}
	m := NewMatrix(size, len(seq1), len(seq2))
	for p1 := 0; p1+w <= len(seq1); p1++ {
		for p2 := 0; p2+w <= len(seq2); p2++ {
			x := Coordinate(p1, len(seq1), size)
			y := Coordinate(p2, len(seq2), size)
			if window.MatchesForward(seq1, seq2, p1, p2, w) {
				m.Set(x, y, ForwardMatch)
			}
			if revcomp && window.MatchesReverseComplement(seq1, seq2, p1, p2, w) {
				m.Set(x, y, ReverseComplementMatch)
			}
		}
	}
	return m
}

// grid returns the matrix as rows of cells, for readable diffs.
func grid(m *Matrix) [][]Cell {
	out := make([][]Cell, m.Size)
	for y := range out {
		out[y] = append([]Cell(nil), m.Row(y)...)
	}
	return out
}

func randomSeq(r *rand.Rand, n int, alphabet string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return out
}

func TestBuildIdenticalDiagonal(t *testing.T) {
	seq := []byte("ATCGATCGATCG")
	m, err := BuildMatrix(seq, seq, 4.0, 1, false)
	require.NoError(t, err)

	require.Equal(t, 4, m.Size)
	for i := 0; i < 4; i++ {
		assert.Equal(t, ForwardMatch, m.At(i, i), "diagonal cell %d", i)
	}
	assert.Zero(t, m.Counts().ReverseComplement)
}

func TestBuildDifferentIsEmpty(t *testing.T) {
	m, err := BuildMatrix([]byte("AAAAAAAAAAAAA"), []byte("CCCCCCCCCCCCC"), 4.0, 1, false)
	require.NoError(t, err)

	require.Equal(t, 4, m.Size)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, NoMatch, m.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestBuildWidthCalculation(t *testing.T) {
	seq := []byte("ATCGATCGATCGATCG")

	pixels, err := BuildMatrix(seq, seq, 8.0, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 8, pixels.Size)

	fraction, err := BuildMatrix(seq, seq, 0.5, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 8, fraction.Size)
}

func TestBuildSelfDiagonalWindow(t *testing.T) {
	seq := []byte("CTTGGTCATTTAGAGGAAGTAAAAGTCGTAACAAGGTTTCCGTAGGTGAACCTGCGGAAGGATCATTAAAGAAATTTAATAATT")
	m, err := BuildMatrix(seq, seq, 1.0, 10, false)
	require.NoError(t, err)
	require.Equal(t, len(seq), m.Size)

	// Every reachable diagonal cell is set; positions past len-window have no window.
	for p := 0; p <= len(seq)-10; p++ {
		assert.Equal(t, ForwardMatch, m.At(p, p), "diagonal %d", p)
	}
}

func TestBuildReverseComplementCells(t *testing.T) {
	// seq2 is the reverse complement of seq1, so the anti-diagonal lights up.
	seq1 := []byte("AACGTTTGCA")
	seq2 := window.ReverseComplement(seq1)

	m, err := BuildMatrix(seq1, seq2, 10.0, 4, true)
	require.NoError(t, err)

	n := len(seq1)
	for p1 := 0; p1 <= n-4; p1++ {
		p2 := n - 4 - p1
		got := m.At(p1, p2)
		assert.Equal(t, ReverseComplementMatch, got, "anti-diagonal (%d,%d)", p1, p2)
	}
}

func TestBuildRevcompDoesNotChangeGrid(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	s1 := randomSeq(r, 120, "ACGT")
	s2 := randomSeq(r, 90, "ACGT")

	fwd, err := BuildMatrix(s1, s2, 0.5, 3, false)
	require.NoError(t, err)
	both, err := BuildMatrix(s1, s2, 0.5, 3, true)
	require.NoError(t, err)

	require.Equal(t, fwd.Size, both.Size)
	for y := 0; y < fwd.Size; y++ {
		for x := 0; x < fwd.Size; x++ {
			if fwd.At(x, y) == ForwardMatch {
				assert.NotEqual(t, NoMatch, both.At(x, y), "cell (%d,%d) lost its match", x, y)
			}
		}
	}
}

func TestBuildDegenerateInputs(t *testing.T) {
	tests := []struct {
		name       string
		seq1, seq2 string
		width      float64
		w          int
	}{
		{"shorter than window", "ACG", "ACGTACGT", 4.0, 5},
		{"empty first", "", "ACGT", 4.0, 1},
		{"both empty", "", "", 2.0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := BuildMatrix([]byte(tt.seq1), []byte(tt.seq2), tt.width, tt.w, true)
			require.NoError(t, err)
			assert.Equal(t, Counts{}, m.Counts())
		})
	}
}

func TestBuildConfigErrors(t *testing.T) {
	seq := []byte("ACGTACGT")

	_, err := BuildMatrix(seq, seq, 4.0, 0, false)
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "window", ce.Param)

	_, err = BuildMatrix(seq, seq, -1, 3, false)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "width", ce.Param)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	seq1 := []byte("acgtACGTnn")
	seq2 := []byte("TTGCAacgt")
	_, err := BuildMatrix(seq1, seq2, 5.0, 2, true)
	require.NoError(t, err)
	assert.Equal(t, "acgtACGTnn", string(seq1))
	assert.Equal(t, "TTGCAacgt", string(seq2))
}

func TestBuildIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	s1 := randomSeq(r, 200, "ACGTacgt")
	s2 := randomSeq(r, 150, "ACGTN")

	a, err := BuildMatrix(s1, s2, 0.3, 4, true)
	require.NoError(t, err)
	b, err := BuildMatrix(s1, s2, 0.3, 4, true)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestBuildMatchesNaiveReference(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		s1 := randomSeq(r, 20+r.Intn(150), "ACGTacgtN")
		s2 := randomSeq(r, 20+r.Intn(150), "ACGTacgtN")
		w := 1 + r.Intn(5)
		width := []float64{0.2, 0.5, 1.0, 7, 33}[r.Intn(5)]
		rc := r.Intn(2) == 0

		got, err := BuildMatrix(s1, s2, width, w, rc)
		require.NoError(t, err)
		want := naive(s1, s2, width, w, rc)
		if diff := cmp.Diff(grid(want), grid(got)); diff != "" {
			t.Fatalf("case %d (w=%d width=%v rc=%v) mismatch (-want +got):\n%s", i, w, width, rc, diff)
		}
	}
}

func TestBuildParallelEqualsSerial(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s1 := randomSeq(r, 400, "ACGT")
	s2 := append(append([]byte(nil), s1[100:300]...), window.ReverseComplement(s1[:150])...)

	serial, err := Build(s1, s2, Config{Width: 0.25, Window: 3, ReverseComplement: true, Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 64, 1000} {
		par, err := Build(s1, s2, Config{Width: 0.25, Window: 3, ReverseComplement: true, Workers: workers})
		require.NoError(t, err)
		if diff := cmp.Diff(grid(serial), grid(par)); diff != "" {
			t.Fatalf("workers=%d differs from serial (-serial +parallel):\n%s", workers, diff)
		}
	}
}

func TestPartitionColumnsDisjoint(t *testing.T) {
	const len1, size = 97, 13
	positions := len1 - 4 + 1
	spans := partition(positions, len1, size, 5)

	require.NotEmpty(t, spans)
	assert.Equal(t, 0, spans[0].lo)
	assert.Equal(t, positions, spans[len(spans)-1].hi)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].hi, spans[i].lo, "spans must be contiguous")
		assert.NotEqual(t,
			Coordinate(spans[i-1].hi-1, len1, size),
			Coordinate(spans[i].lo, len1, size),
			"boundary %d splits a column", spans[i].lo)
	}
}

func TestPartitionMorePartsThanColumns(t *testing.T) {
	spans := partition(10, 10, 2, 8)
	assert.LessOrEqual(t, len(spans), 3)
	total := 0
	for _, s := range spans {
		total += s.hi - s.lo
	}
	assert.Equal(t, 10, total)
}
