// Package seq holds small generic helpers over slices.
package seq

// Pairwise returns every adjacent pair of items, in order. A slice with
// fewer than two items yields nothing.
func Pairwise[T any](items []T) [][2]T {
	if len(items) < 2 {
		return nil
	}
	pairs := make([][2]T, 0, len(items)-1)
	for i := 1; i < len(items); i++ {
		pairs = append(pairs, [2]T{items[i-1], items[i]})
	}
	return pairs
}

// Pair is a key/value pair for GroupAsSet.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// GroupAsSet groups key/value pairs with potentially duplicated keys into
// a mapping from unique key to the set of values seen with it.
func GroupAsSet[K, V comparable](pairs []Pair[K, V]) map[K]map[V]bool {
	groups := make(map[K]map[V]bool)
	for _, p := range pairs {
		set, ok := groups[p.Key]
		if !ok {
			set = make(map[V]bool)
			groups[p.Key] = set
		}
		set[p.Value] = true
	}
	return groups
}
