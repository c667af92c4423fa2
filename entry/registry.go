package entry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-logr/logr"
)

// DefaultCollection is the collection type every Registry starts with and
// the default collection of types that do not name one.
const DefaultCollection = "Entries"

// Registry holds entry and collection types by name. Types compile their
// association definitions once, on first use, and keep them for the
// lifetime of the registry.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	types       map[string]*Type
	order       []string
	collections map[string]*CollectionType

	logger logr.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for type definition and compilation
// events. The default discards everything.
func WithLogger(logger logr.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a Registry holding the DefaultCollection.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		types:       make(map[string]*Type),
		collections: make(map[string]*CollectionType),
		logger:      logr.Discard(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.collections[DefaultCollection] = &CollectionType{name: DefaultCollection, registry: r}

	return r
}

// Define registers an entry type. Association targets are resolved lazily,
// so types may reference each other in any order.
func (r *Registry) Define(name string, opts ...TypeOption) (*Type, error) {
	t := &Type{
		name:       name,
		registry:   r,
		collection: DefaultCollection,
	}

	for _, opt := range opts {
		opt(t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkFree(name); err != nil {
		return nil, err
	}

	r.types[name] = t
	r.order = append(r.order, name)

	r.logger.V(1).Info("defined entry type", "type", name, "associations", len(t.decls))

	return t, nil
}

// MustDefine is like Define but panics on error.
func (r *Registry) MustDefine(name string, opts ...TypeOption) *Type {
	t, err := r.Define(name, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// DefineCollection registers a collection type.
func (r *Registry) DefineCollection(name string) (*CollectionType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkFree(name); err != nil {
		return nil, err
	}

	c := &CollectionType{name: name, registry: r}
	r.collections[name] = c

	r.logger.V(1).Info("defined collection type", "collection", name)

	return c, nil
}

func (r *Registry) checkFree(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty type name", ErrUnknownType)
	}

	if _, ok := r.types[name]; ok {
		return fmt.Errorf("entry type %q: %w", name, ErrAlreadyDefined)
	}

	if _, ok := r.collections[name]; ok {
		return fmt.Errorf("collection type %q: %w", name, ErrAlreadyDefined)
	}

	return nil
}

// Type returns the entry type registered under name.
func (r *Registry) Type(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]

	return t, ok
}

// Collection returns the collection type registered under name.
func (r *Registry) Collection(name string) (*CollectionType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[name]

	return c, ok
}

// Types returns the entry types in definition order.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Type, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.types[name])
	}

	return out
}

// Collections returns the collection type names, sorted.
func (r *Registry) Collections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// IsEntryType implements association.Resolver.
func (r *Registry) IsEntryType(name string) bool {
	_, ok := r.Type(name)
	return ok
}

// IsCollectionType implements association.Resolver.
func (r *Registry) IsCollectionType(name string) bool {
	_, ok := r.Collection(name)
	return ok
}

// Compile compiles the definitions of every type and returns the errors
// keyed by type name. Types compile at most once, so calling Compile at
// start-up moves configuration failures out of the first request.
func (r *Registry) Compile() map[string]error {
	errs := make(map[string]error)

	for _, t := range r.Types() {
		if _, err := t.Definitions(); err != nil {
			errs[t.name] = err
		}
	}

	return errs
}
