package spec

import (
	"sort"
	"sync"
)

// Entity is one row of the named character reference table.
type Entity struct {
	Codepoints []rune
	Characters string
}

var (
	entitiesByFirstCharOnce sync.Once
	entitiesByFirstChar     map[byte][]string
)

// EntityNamesByFirstChar groups the table by the first character after the
// `&`. Each group holds the rest of the names (without `&` and the first
// character), longest first.
func EntityNamesByFirstChar() map[byte][]string {
	entitiesByFirstCharOnce.Do(func() {
		groups := make(map[byte][]string)
		for name := range Entities {
			c := name[1]
			groups[c] = append(groups[c], name[2:])
		}
		for _, names := range groups {
			sort.Slice(names, func(i, j int) bool {
				if len(names[i]) != len(names[j]) {
					return len(names[i]) > len(names[j])
				}
				return names[i] < names[j]
			})
		}
		entitiesByFirstChar = groups
	})
	return entitiesByFirstChar
}

// LookupEntity returns the table row for a reference such as "&amp;".
func LookupEntity(ref string) (Entity, bool) {
	e, ok := Entities[ref]
	return e, ok
}
