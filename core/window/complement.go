// core/window/complement.go

package window

var (
	upper      [256]byte
	complement [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		upper[i] = b
		complement[i] = b
	}
	// Both cases land on the upper-case complement; every other byte maps to
	// its own upper-case form.
	for _, p := range [][2]byte{{'A', 'T'}, {'T', 'A'}, {'G', 'C'}, {'C', 'G'}} {
		complement[p[0]] = p[1]
		complement[p[0]+('a'-'A')] = p[1]
	}
}

// Upper folds an ASCII letter to upper case; other bytes are returned as-is.
func Upper(b byte) byte { return upper[b] }

// Complement returns the upper-case Watson-Crick partner of b (A↔T, G↔C).
// Any other byte is its own complement.
func Complement(b byte) byte { return complement[b] }

// Fold returns an upper-cased copy of seq.
func Fold(seq []byte) []byte {
	if seq == nil {
		return nil
	}
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[i] = upper[b]
	}
	return out
}

// ReverseComplement returns the folded reverse complement of seq.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
