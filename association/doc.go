// Package association compiles declarative association tokens into the
// metadata the entry package uses to resolve relations lazily.
//
// # Token grammar
//
// A token names the exposed property and decorates it:
//
//	[?]name[.[prefix]][[]]
//
// Examples:
//   - "?customer"  nullable: an empty value resolves to null
//   - "tag."       embedded: fields "tag_*" form the related entry
//   - "author.a_"  embedded with an explicit prefix "a_"
//   - "items[]"    multiplicity: the field holds a keyed row set
//
// Embedding and multiplicity are mutually exclusive on one token.
//
// # Declarations
//
// A declaration pairs a token with its target entry type, and optionally a
// collection type used instead of the owning type's default:
//
//	association.Single("orderItems[]", "OrderItem")
//	association.Pair("tags[]", "Tag", "TaggedEntries")
//
// Compile validates every declaration against a Resolver that knows the
// registered entry and collection types, and reports every problem as a
// *ConfigurationError.
package association
