// Package ordering applies a saved display order to a live collection.
//
// A saved order is a list of ids captured at some earlier point. The
// collection may have gained or lost items since then, so Apply places the
// ids it knows about first and lets everything else keep its current
// relative position at the end.
package ordering

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when the collection holds the same id twice.
var ErrDuplicateID = errors.New("duplicate id in collection")

// Apply returns a new slice with items rearranged according to order.
// Items whose id is not listed follow the ordered ones in their original
// relative order. Unknown ids in order are ignored, and a repeated id only
// counts at its first position. An empty order yields a copy of items.
// Neither input is modified.
func Apply[T any](items []T, order []string, id func(T) string) ([]T, error) {
	if err := checkUnique(items, id); err != nil {
		return nil, err
	}

	out := make([]T, len(items))
	if len(order) == 0 {
		copy(out, items)
		return out, nil
	}

	rank := make(map[string]int, len(order))
	for i, oid := range order {
		if _, ok := rank[oid]; !ok {
			rank[oid] = i
		}
	}

	byID := make(map[string]T, len(items))
	for _, item := range items {
		byID[id(item)] = item
	}

	n := 0
	placed := make(map[string]bool, len(order))
	for _, oid := range order {
		item, ok := byID[oid]
		if !ok || placed[oid] {
			continue
		}
		placed[oid] = true
		out[n] = item
		n++
	}
	for _, item := range items {
		if _, ok := rank[id(item)]; ok {
			continue
		}
		out[n] = item
		n++
	}
	return out, nil
}

// IDs extracts the id sequence of items.
func IDs[T any](items []T, id func(T) string) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = id(item)
	}
	return ids
}

func checkUnique[T any](items []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		key := id(item)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q at index %d", ErrDuplicateID, key, i)
		}
		seen[key] = struct{}{}
	}
	return nil
}
