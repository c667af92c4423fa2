package entry

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"schematic/record"
)

var errNotAssociation = errors.New("resolved slot is not a declared association")

// Snapshot is the serializable state of an Entry: its raw record and every
// association resolved so far.
type Snapshot struct {
	Type      string         `yaml:"type"`
	Inherited string         `yaml:"inherited,omitempty"`
	Data      *record.Record `yaml:"data"`
	Resolved  []Slot         `yaml:"resolved,omitempty"`
}

// Slot is one resolved association. A slot with neither Entry nor Entries
// set resolved to null.
type Slot struct {
	Name    string           `yaml:"name"`
	Entry   *Snapshot        `yaml:"entry,omitempty"`
	Entries *EntriesSnapshot `yaml:"entries,omitempty"`
}

// EntriesSnapshot is the serializable state of an Entries, including the
// entries materialized so far.
type EntriesSnapshot struct {
	Type       string        `yaml:"type"`
	Collection string        `yaml:"collection"`
	Items      *record.Items `yaml:"items"`
	Cached     []CachedEntry `yaml:"cached,omitempty"`
}

// CachedEntry is one materialized element of an EntriesSnapshot.
type CachedEntry struct {
	Key   record.Key `yaml:"key"`
	Entry *Snapshot  `yaml:"entry"`
}

// Snapshot captures the entry state.
func (e *Entry) Snapshot() *Snapshot {
	s := &Snapshot{Type: e.typ.name, Data: e.data}

	if e.inherited != nil {
		s.Inherited = e.inherited.name
	}

	for _, name := range e.defs.Names() {
		v, ok := e.memo[name]
		if !ok {
			continue
		}

		slot := Slot{Name: name}

		switch v.Kind() {
		case KindEntry:
			slot.Entry = v.Entry().Snapshot()
		case KindEntries:
			slot.Entries = v.Entries().Snapshot()
		}

		s.Resolved = append(s.Resolved, slot)
	}

	return s
}

// Snapshot captures the collection state.
func (e *Entries) Snapshot() *EntriesSnapshot {
	s := &EntriesSnapshot{
		Type:       e.typ.name,
		Collection: e.coll.name,
		Items:      e.items,
	}

	for _, key := range e.items.Keys() {
		if ent, ok := e.cache[key]; ok {
			s.Cached = append(s.Cached, CachedEntry{Key: key, Entry: ent.Snapshot()})
		}
	}

	return s
}

// Revive rebuilds an Entry from a snapshot. The entry type's definitions
// are compiled if this registry has not done so yet; resolved values are
// restored as they were.
func (r *Registry) Revive(s *Snapshot) (*Entry, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: empty snapshot", ErrInvalidData)
	}

	t, ok := r.Type(s.Type)
	if !ok {
		return nil, fmt.Errorf("entry type %q: %w", s.Type, ErrUnknownType)
	}

	var inherited *CollectionType
	if s.Inherited != "" {
		if inherited, ok = r.Collection(s.Inherited); !ok {
			return nil, fmt.Errorf("collection type %q: %w", s.Inherited, ErrUnknownType)
		}
	}

	data := s.Data
	if data == nil {
		data = record.New()
	}

	e, err := t.newEntry(data, inherited)
	if err != nil {
		return nil, err
	}

	for _, slot := range s.Resolved {
		if _, declared := e.defs.Lookup(slot.Name); !declared {
			return nil, e.invalid(slot.Name, errNotAssociation)
		}

		v := Null()

		switch {
		case slot.Entry != nil:
			child, err := r.Revive(slot.Entry)
			if err != nil {
				return nil, err
			}

			v = entryValue(child)
		case slot.Entries != nil:
			entries, err := r.ReviveEntries(slot.Entries)
			if err != nil {
				return nil, err
			}

			v = entriesValue(entries)
		}

		if e.resolved == nil {
			e.resolved = make(map[string]struct{})
			e.memo = make(map[string]Value)
		}

		e.resolved[slot.Name] = struct{}{}
		e.memo[slot.Name] = v
	}

	return e, nil
}

// ReviveEntries rebuilds an Entries from a snapshot.
func (r *Registry) ReviveEntries(s *EntriesSnapshot) (*Entries, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: empty snapshot", ErrInvalidData)
	}

	t, ok := r.Type(s.Type)
	if !ok {
		return nil, fmt.Errorf("entry type %q: %w", s.Type, ErrUnknownType)
	}

	coll, ok := r.Collection(s.Collection)
	if !ok {
		return nil, fmt.Errorf("collection type %q: %w", s.Collection, ErrUnknownType)
	}

	entries, err := newEntries(coll, t, s.Items)
	if err != nil {
		return nil, err
	}

	for _, c := range s.Cached {
		key := record.NormalizeKey(c.Key)
		if !entries.Has(key) {
			return nil, &MissingKeyError{Key: key}
		}

		ent, err := r.Revive(c.Entry)
		if err != nil {
			return nil, err
		}

		entries.cache[key] = ent
	}

	return entries, nil
}

// Encode serializes the entry state as YAML.
func Encode(e *Entry) ([]byte, error) {
	out, err := yaml.Marshal(e.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s entry: %w", e.typ.name, err)
	}

	return out, nil
}

// Decode parses YAML produced by Encode and revives the entry.
func (r *Registry) Decode(data []byte) (*Entry, error) {
	var s Snapshot

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode entry snapshot: %w", err)
	}

	return r.Revive(&s)
}
