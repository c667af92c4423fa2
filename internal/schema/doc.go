// Package schema loads YAML schema files declaring entry types, their
// collections, scalar fields and associations, and builds an
// entry.Registry from them.
//
// # Schema Overview
//
//	version: "1"
//	collections: [TaggedEntries]
//	types:
//	  - name: Book
//	    collection: Entries   # default collection of multiplicity associations
//	    empty: standard       # standard | never
//	    fields:
//	      id: int
//	      title: string
//	    associations:
//	      tag.: Tag
//	      author.a_: Author
//	      tags[]: [Tag, TaggedEntries]
//
// Associations keep their declaration order. A value is either the target
// type or a [target, collection] pair.
//
// # Field Kinds
//
// Fields are optional and only drive generated accessors: string, int,
// float, bool or any (the default).
package schema
