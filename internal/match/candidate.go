package match

import (
	"sort"
)

// DefaultMinScore is the similarity below which a name is not suggested.
const DefaultMinScore = 0.5

// Candidate is a known name ranked against a wanted one.
type Candidate struct {
	Name string
	// Score is the normalized Levenshtein similarity (0-1).
	Score float64
	// Normalized is Name after NormalizeIdent.
	Normalized string
}

// CandidateList is a list of candidates sorted best first.
type CandidateList []Candidate

// RankCandidates scores every known name against wanted and returns them
// sorted by score, best first. Names scoring below minScore are dropped.
func RankCandidates(wanted string, known []string, minScore float64) CandidateList {
	norm := NormalizeIdent(wanted)

	var candidates CandidateList

	for _, name := range known {
		if name == wanted {
			continue
		}

		n := NormalizeIdent(name)

		score := LevenshteinNormalized(norm, n)
		if score < minScore {
			continue
		}

		candidates = append(candidates, Candidate{Name: name, Score: score, Normalized: n})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns at most limit known names close to wanted.
func Suggest(wanted string, known []string, limit int) []string {
	return RankCandidates(wanted, known, DefaultMinScore).Top(limit).Names()
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	if len(c) == 0 {
		return nil
	}

	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}
