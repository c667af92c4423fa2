// Package gen generates typed accessors for the entry types of a schema
// file.
//
// Generation uses text/template and golang.org/x/tools/imports for
// readable, deterministic Go code. For every entry type the output holds:
//   - a wrapper struct embedding *entry.Entry, with one getter per declared
//     field and per association
//   - a List wrapper embedding *entry.Entries, with typed Get and All
//   - constructors bound to a registry
//
// plus a Define function registering the whole schema on a registry.
package gen
