// Package keys holds the fixed vocabulary of configuration key names a device
// reports in its plain-text parameter responses. The vocabulary is read-only:
// it is built once on first use and shared by every caller.
package keys

import (
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// registry is the membership set over table. A thread-unsafe set is enough
// because nothing writes to it after construction.
var registry = sync.OnceValue(func() mapset.Set[string] {
	s := mapset.NewThreadUnsafeSet[string]()
	for _, g := range table {
		for _, k := range g.Keys {
			s.Add(k)
		}
	}
	return s
})

// owners maps each key to the first group that lists it.
var owners = sync.OnceValue(func() map[string]string {
	m := make(map[string]string)
	for _, g := range table {
		for _, k := range g.Keys {
			if _, ok := m[k]; !ok {
				m[k] = g.Name
			}
		}
	}
	return m
})

// IsKey reports whether token exactly matches a recognized key.
// The comparison is case-sensitive and token is not trimmed.
func IsKey(token string) bool {
	return registry().Contains(token)
}

// All returns every recognized key once, in ascending order.
func All() []string {
	out := registry().ToSlice()
	slices.Sort(out)
	return out
}

// Len returns the number of distinct recognized keys.
func Len() int {
	return registry().Cardinality()
}

// Groups returns a copy of the vocabulary grouped by settings domain.
func Groups() []Group {
	out := make([]Group, len(table))
	for i, g := range table {
		out[i] = Group{Name: g.Name, Keys: slices.Compact(slices.Clone(g.Keys))}
	}
	return out
}

// GroupKeys returns the distinct keys of the named group.
func GroupKeys(name string) ([]string, bool) {
	for _, g := range table {
		if g.Name == name {
			return slices.Compact(slices.Clone(g.Keys)), true
		}
	}
	return nil, false
}

// GroupOf returns the settings domain a key belongs to.
func GroupOf(key string) (string, bool) {
	name, ok := owners()[key]
	return name, ok
}

// ForPublishType returns the destination keys used by a publish_type value,
// e.g. "6" (RTMP). Unknown types yield nil.
func ForPublishType(t string) []string {
	name, ok := publishGroups[t]
	if !ok {
		return nil
	}
	ks, _ := GroupKeys(name)
	return ks
}
