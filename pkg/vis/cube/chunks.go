package cube

// Range is a half-open [Lo, Hi) index interval along one axis.
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// NumChunks is the number of size-sized chunks covering n indices,
// counting a ragged trailing chunk. Equivalent to ceil(n / size).
func NumChunks(n, size int) int {
	return (n + size - 1) / size
}

// Chunks partitions [0, n) into consecutive ranges of the given size.
// The final range is ragged when size does not divide n.
func Chunks(n, size int) []Range {
	ranges := make([]Range, 0, NumChunks(n, size))
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		ranges = append(ranges, Range{Lo: lo, Hi: hi})
	}
	return ranges
}
