package errors

import (
	"fmt"
	"sort"
	"strings"
)

// MaxSuggestionDistance is the maximum edit distance for a suggestion to be considered.
const MaxSuggestionDistance = 3

// MaxSuggestions is the maximum number of suggestions to return.
const MaxSuggestions = 3

// Suggestion represents a suggested correction with its edit distance.
type Suggestion struct {
	Value    string
	Distance int
}

// SuggestSimilar finds candidates close to target. Sensor names are compared
// case-insensitively; single-letter actions never produce suggestions since
// every other letter is within distance one.
func SuggestSimilar(target string, candidates []string) []Suggestion {
	if len([]rune(target)) < 2 || len(candidates) == 0 {
		return nil
	}
	target = strings.ToLower(target)
	threshold := MaxSuggestionDistance
	if len(target) <= 3 {
		threshold = 1
	} else if len(target) <= 5 {
		threshold = 2
	}
	var suggestions []Suggestion
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if candidate == "" || lower == target {
			continue
		}
		if dist := levenshteinDistance(target, lower); dist <= threshold {
			suggestions = append(suggestions, Suggestion{Value: candidate, Distance: dist})
		}
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Value < suggestions[j].Value
	})
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// FormatSuggestions formats suggestions as a hint in the given locale.
// Returns empty string if no suggestions.
func (l Locale) FormatSuggestions(suggestions []Suggestion) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return l.Sprintf(MsgDidYouMean, fmt.Sprintf("%q", suggestions[0].Value))
	}
	values := make([]string, len(suggestions))
	for i, s := range suggestions {
		values[i] = s.Value
	}
	return l.Sprintf(MsgDidYouMeanOneOf, l.List(values))
}

// levenshteinDistance computes the edit distance between two strings.
// This is an optimized implementation using two rows instead of a full matrix.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Convert to runes for proper Unicode handling
	aRunes := []rune(a)
	bRunes := []rune(b)

	// Ensure a is the shorter string for space optimization
	if len(aRunes) > len(bRunes) {
		aRunes, bRunes = bRunes, aRunes
	}

	lenA := len(aRunes)
	lenB := len(bRunes)

	// Use two rows instead of full matrix
	prev := make([]int, lenA+1)
	curr := make([]int, lenA+1)

	// Initialize first row
	for i := 0; i <= lenA; i++ {
		prev[i] = i
	}

	// Fill in the rest
	for j := 1; j <= lenB; j++ {
		curr[0] = j
		for i := 1; i <= lenA; i++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}
			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lenA]
}
