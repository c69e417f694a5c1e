package score

// Ratio computes the Ratcliff/Obershelp similarity of two strings:
// twice the number of matching runes over the total length, with matches
// found by recursively locating longest common substrings. Two empty
// strings are identical by definition.
func Ratio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingRunes(ar, br)) / float64(total)
}

func matchingRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}

	matched := size
	matched += matchingRunes(a[:ai], b[:bi])
	matched += matchingRunes(a[ai+size:], b[bi+size:])
	return matched
}

// longestCommonBlock finds the longest common substring of a and b using the
// classic dynamic programming row sweep.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, size
}
