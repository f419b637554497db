// Package model defines the shared data structures of pearlcfg: the
// configuration mapping exchanged with a device and the tool's own settings.
package model

import (
	"maps"
	"slices"
)

// Params is a device configuration mapping from key to value. Values may be
// empty. Every serializer walks it in ascending key order (see Keys).
type Params map[string]string

// Keys returns the mapping's keys in ascending order.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}
