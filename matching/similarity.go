// Package matching holds the pairing algorithms and the drain coordinator.
// The scoring functions are pure; all store access goes through the
// coordinator so that a single writer owns the claim-and-commit step.
package matching

import (
	"match-lab/domain"
)

// Jaccard computes |A∩B| / |A∪B| over two hashtag slices. Duplicate tags are
// collapsed before scoring. Two empty sets score zero, not one.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, tag := range a {
		setA[tag] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, tag := range b {
		setB[tag] = struct{}{}
	}

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tag := range setA {
		if _, ok := setB[tag]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// FindBestMatch picks the highest-scoring candidate for entry above the
// similarity floor. Ties are broken by earliest enqueue time so the
// longest-waiting candidate wins. Entries with no hashtags are never matched
// by similarity; the timeout path covers them.
func FindBestMatch(entry domain.QueueEntry, candidates []domain.QueueEntry, minSimilarity float64) (domain.QueueEntry, float64, bool) {
	var (
		best      domain.QueueEntry
		bestScore float64
		found     bool
	)

	if len(entry.Hashtags) == 0 {
		return best, 0, false
	}

	for _, candidate := range candidates {
		if candidate.UserID == entry.UserID || len(candidate.Hashtags) == 0 {
			continue
		}
		score := Jaccard(entry.Hashtags, candidate.Hashtags)
		if score < minSimilarity {
			continue
		}
		switch {
		case !found, score > bestScore:
			best, bestScore, found = candidate, score, true
		case score == bestScore && candidate.EnqueuedAt.Before(best.EnqueuedAt):
			best = candidate
		}
	}
	return best, bestScore, found
}
