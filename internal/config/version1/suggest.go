package version1

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// suggestionThreshold is the maximum edit distance for a "did you mean"
// hint. Anything further away is more likely a different concept than a
// typo.
const suggestionThreshold = 3

// didYouMean returns a hint suffix for an error message when input is a
// near miss of one of the known names, or "" otherwise.
func didYouMean(input string, known []string) string {
	best := ""
	bestDistance := suggestionThreshold + 1

	for _, candidate := range known {
		distance := levenshtein.ComputeDistance(input, candidate)
		if distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}

	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
