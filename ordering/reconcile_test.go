package ordering

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/go-playground/assert/v2"
)

type entry struct {
	ID    string
	Label string
}

func entryID(e entry) string { return e.ID }

func entries(ids ...string) []entry {
	out := make([]entry, len(ids))
	for i, id := range ids {
		out[i] = entry{ID: id, Label: "label-" + id}
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		items []entry
		order []string
		want  []string
	}{
		{
			name:  "should follow the order list",
			items: entries("a", "b", "c"),
			order: []string{"c", "a", "b"},
			want:  []string{"c", "a", "b"},
		},
		{
			name:  "should ignore unknown ids and float unlisted items to the end",
			items: entries("a", "b"),
			order: []string{"z", "a"},
			want:  []string{"a", "b"},
		},
		{
			name:  "should ignore extra ids when the order list is longer than the collection",
			items: entries("a", "b"),
			order: []string{"x", "b", "y", "a", "w"},
			want:  []string{"b", "a"},
		},
		{
			name:  "should keep newly added items after ordered ones in their original order",
			items: entries("new1", "a", "new2", "b"),
			order: []string{"b", "a"},
			want:  []string{"b", "a", "new1", "new2"},
		},
		{
			name:  "should tolerate ids removed since the order was captured",
			items: entries("a", "c"),
			order: []string{"c", "b", "a"},
			want:  []string{"c", "a"},
		},
		{
			name:  "should use the first position of a repeated order id",
			items: entries("a", "b", "c"),
			order: []string{"b", "a", "b"},
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "should return the input unchanged for an empty order",
			items: entries("c", "a", "b"),
			order: nil,
			want:  []string{"c", "a", "b"},
		},
		{
			name:  "should handle an empty collection",
			items: nil,
			order: []string{"a"},
			want:  []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(tc.items, tc.order, entryID)
			if err != nil {
				t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
			}
			assert.Equal(t, tc.want, IDs(got, entryID))
		})
	}
}

func TestApply_DuplicateIDs(t *testing.T) {
	_, err := Apply(entries("a", "b", "a"), []string{"a"}, entryID)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrDuplicateID, err)
	}
}

func TestApply_DoesNotMutateInputs(t *testing.T) {
	items := entries("a", "b", "c")
	order := []string{"c", "b"}

	_, err := Apply(items, order, entryID)
	if err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}

	assert.Equal(t, entries("a", "b", "c"), items)
	assert.Equal(t, []string{"c", "b"}, order)
}

func TestApply_EmptyOrderReturnsCopy(t *testing.T) {
	items := entries("a", "b")
	got, err := Apply(items, []string{}, entryID)
	if err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}
	got[0].Label = "changed"
	assert.Equal(t, "label-a", items[0].Label)
}

func TestApply_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		items := randomCollection(rng)
		order := randomOrder(rng, items)

		once, err := Apply(items, order, entryID)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		twice, err := Apply(once, order, entryID)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}

		// idempotence
		assert.Equal(t, once, twice)

		// permutation: same id set, same length
		assert.Equal(t, len(items), len(once))
		assert.Equal(t, sortedIDs(items), sortedIDs(once))

		// entries are carried over untouched
		byID := map[string]entry{}
		for _, e := range items {
			byID[e.ID] = e
		}
		for _, e := range once {
			assert.Equal(t, byID[e.ID], e)
		}
	}
}

func randomCollection(rng *rand.Rand) []entry {
	n := rng.Intn(8)
	ids := rng.Perm(20)[:n]
	out := make([]entry, n)
	for i, id := range ids {
		out[i] = entry{ID: fmt.Sprintf("id-%d", id), Label: fmt.Sprintf("item %d", id)}
	}
	return out
}

// randomOrder mixes known ids, stale ids and repeats.
func randomOrder(rng *rand.Rand, items []entry) []string {
	var order []string
	for _, e := range items {
		if rng.Intn(3) > 0 {
			order = append(order, e.ID)
		}
	}
	for i := rng.Intn(3); i > 0; i-- {
		order = append(order, fmt.Sprintf("stale-%d", rng.Intn(100)))
	}
	if len(order) > 0 && rng.Intn(4) == 0 {
		order = append(order, order[0])
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}

func sortedIDs(items []entry) []string {
	ids := IDs(items, entryID)
	sort.Strings(ids)
	return ids
}
