// Package match provides identifier normalization, Levenshtein distance and
// candidate ranking for schema names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - ExportedName: turns a field or association name into a Go identifier
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names against a misspelled one
package match
