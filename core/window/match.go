// core/window/match.go

// Package window compares fixed-length windows of two nucleotide sequences.
//
// Comparison is case-insensitive. A window that would run past the end of
// its sequence never matches; that is a defined outcome, not an error.
package window

// inRange reports whether both windows lie inside their sequences.
func inRange(seq1, seq2 []byte, pos1, pos2, w int) bool {
	if w <= 0 || pos1 < 0 || pos2 < 0 {
		return false
	}
	return pos1+w <= len(seq1) && pos2+w <= len(seq2)
}

// MatchesForward reports whether seq1[pos1:pos1+w] equals seq2[pos2:pos2+w]
// symbol by symbol, ignoring case.
func MatchesForward(seq1, seq2 []byte, pos1, pos2, w int) bool {
	if !inRange(seq1, seq2, pos1, pos2, w) {
		return false
	}
	for i := 0; i < w; i++ {
		if upper[seq1[pos1+i]] != upper[seq2[pos2+i]] {
			return false
		}
	}
	return true
}

// MatchesReverseComplement reports whether seq1[pos1:pos1+w] equals the
// reverse complement of seq2[pos2:pos2+w], ignoring case.
func MatchesReverseComplement(seq1, seq2 []byte, pos1, pos2, w int) bool {
	if !inRange(seq1, seq2, pos1, pos2, w) {
		return false
	}
	for i := 0; i < w; i++ {
		if upper[seq1[pos1+i]] != complement[seq2[pos2+w-1-i]] {
			return false
		}
	}
	return true
}
