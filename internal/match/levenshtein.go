package match

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-rune edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Ensure ra is the shorter string for space optimization
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	// Initialize first row
	for i := range prev {
		prev[i] = i
	}

	// Fill in the rest of the matrix
	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(len(a), len(b))) counted in runes.
func LevenshteinNormalized(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	maxLen := max(la, lb)

	distance := Levenshtein(a, b)

	return 1.0 - float64(distance)/float64(maxLen)
}

// NearPair is a pair of distinct folded labels within the edit threshold.
type NearPair struct {
	A, B     string
	Distance int
}

// NearDuplicates returns every pair of distinct labels whose folded forms are
// within maxDistance edits of each other. Labels that fold to the same key are
// collisions, not near duplicates, and are skipped. Pairs are reported in input
// order; labels shorter than three runes are ignored.
func NearDuplicates(labels []string, maxDistance int) []NearPair {
	var pairs []NearPair

	for i := range labels {
		fa := FoldLabel(labels[i])
		if len([]rune(fa)) < 3 {
			continue
		}

		for j := i + 1; j < len(labels); j++ {
			fb := FoldLabel(labels[j])
			if fa == fb || len([]rune(fb)) < 3 {
				continue
			}

			if d := Levenshtein(fa, fb); d <= maxDistance {
				pairs = append(pairs, NearPair{A: labels[i], B: labels[j], Distance: d})
			}
		}
	}

	return pairs
}
