package editor

import (
	"testing"

	"viukon-cms/models"

	"github.com/go-playground/assert/v2"
)

func TestStore(t *testing.T) {
	t.Run("should start from defaults when given nil", func(t *testing.T) {
		store := NewStore(nil)
		doc, version := store.Snapshot()
		assert.Equal(t, models.DefaultSiteData(), doc)
		assert.Equal(t, uint64(0), version)
	})

	t.Run("should leave the document untouched when a command fails", func(t *testing.T) {
		store := NewStore(testDocument())
		notified := 0
		store.Subscribe(func(*models.SiteData, uint64) { notified++ })

		err := store.Dispatch(SetStat{Field: "visitors", Value: 1})
		if err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}

		doc, version := store.Snapshot()
		assert.Equal(t, testDocument(), doc)
		assert.Equal(t, uint64(0), version)
		assert.Equal(t, 0, notified)
	})

	t.Run("should notify subscribers with a private copy", func(t *testing.T) {
		store := NewStore(testDocument())
		var got *models.SiteData
		var gotVersion uint64
		store.Subscribe(func(doc *models.SiteData, version uint64) {
			got = doc
			gotVersion = version
		})

		if err := store.Dispatch(SetHeroTitle{Title: "ENGINEERING"}); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, "ENGINEERING", got.Hero.Title)
		assert.Equal(t, uint64(1), gotVersion)

		got.Hero.Title = "mutated by listener"
		doc, _ := store.Snapshot()
		assert.Equal(t, "ENGINEERING", doc.Hero.Title)
	})

	t.Run("should stop notifying after unsubscribe", func(t *testing.T) {
		store := NewStore(testDocument())
		notified := 0
		unsubscribe := store.Subscribe(func(*models.SiteData, uint64) { notified++ })

		_ = store.Dispatch(SetHeroTitle{Title: "A"})
		unsubscribe()
		unsubscribe()
		_ = store.Dispatch(SetHeroTitle{Title: "B"})

		assert.Equal(t, 1, notified)
		assert.Equal(t, uint64(2), store.Version())
	})

	t.Run("should not share the initial document", func(t *testing.T) {
		initial := testDocument()
		store := NewStore(initial)
		initial.Projects[0].Title = "mutated by caller"

		doc, _ := store.Snapshot()
		assert.Equal(t, "Aura Fitness", doc.Projects[0].Title)
	})
}
