package engine

import "fmt"

// maxSuggestDistance bounds how far a suggestion may be from the rejected value.
const maxSuggestDistance = 3

// suggestValue returns a "did you mean" hint for an unknown value, or "" when
// no candidate is close enough.
func suggestValue(unknown string, candidates []string) string {
	if unknown == "" || len(candidates) == 0 {
		return ""
	}

	minDistance := maxSuggestDistance + 1
	var bestMatch string
	for _, c := range candidates {
		dist := levenshteinDistance(unknown, c)
		if dist < minDistance {
			minDistance = dist
			bestMatch = c
		}
	}

	// Very short values match almost anything within a few edits.
	if bestMatch == "" || minDistance >= len([]rune(unknown)) {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", bestMatch)
}

// levenshteinDistance calculates the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}
