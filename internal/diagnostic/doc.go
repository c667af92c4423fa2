// Package diagnostic collects structured errors, warnings and notes about
// a schema so that every problem can be reported at once.
//
// Key capabilities:
//   - Association configuration errors split per declaration
//   - Suggestions for misspelled entry and collection types
//   - Warnings for declarations that are legal but likely mistakes
package diagnostic
