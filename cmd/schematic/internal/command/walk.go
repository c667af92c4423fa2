package command

import (
	"fmt"
	"strings"

	"schematic/entry"
)

// Walk follows path from v. A segment names an attribute when the current
// value is an entry and a row key when it is a collection. Null ends the
// walk early and is returned as is.
func Walk(v entry.Value, path []string) (entry.Value, error) {
	for i, seg := range path {
		switch v.Kind() {
		case entry.KindNull:
			return v, nil
		case entry.KindEntry:
			next, err := v.Entry().Get(seg)
			if err != nil {
				return entry.Null(), err
			}

			v = next
		case entry.KindEntries:
			ent, err := v.Entries().Get(seg)
			if err != nil {
				return entry.Null(), err
			}

			v = entry.ValueOf(ent)
		default:
			return entry.Null(), fmt.Errorf("cannot read %q below %q: value is %s",
				seg, strings.Join(path[:i], "."), v.Kind())
		}
	}

	return v, nil
}

// splitPath splits a dotted attribute path; the empty path has no segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, ".")
}
