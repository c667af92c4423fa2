// Package entry materializes raw records into read-only entries whose
// relations are resolved lazily from declared associations.
//
// Types are registered on a Registry with their association declarations:
//
//	reg := entry.NewRegistry()
//	reg.MustDefine("Author")
//	reg.MustDefine("OrderItem")
//	book := reg.MustDefine("Book",
//		entry.Associate("author.a_", "Author"),
//		entry.Associate("?items[]", "OrderItem"),
//	)
//
// Declarations compile once per type, on first use, and a malformed one
// fails every construction of that type with a *ConfigurationError.
//
// Reading an attribute of an Entry returns a Value: a Scalar for plain
// fields, an Entry or Entries for resolved associations, or Null. The
// first read of an association builds the related entry and every later
// read returns the very same object.
//
// Entries is the ordered keyed collection counterpart: rows are
// materialized on first access and cached; Remove, ReduceTo and Transform
// derive new collections without touching the source.
//
// # Approximation
//
// An embedded association ("author.a_") whose prefixed fields are all NULL
// resolves to Null: a related object with only NULL columns cannot be told
// apart from a missing one.
package entry
