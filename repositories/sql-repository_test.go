package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"viukon-cms/models"

	"github.com/go-playground/assert/v2"
)

func setupTestDB(t *testing.T) *SQLRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "sitedata_test.db")
	db, err := OpenSQLite(dbPath, 1)
	if err != nil {
		t.Fatalf("setting up test db: %v", err)
	}

	repo := NewSQLRepository(db)
	t.Cleanup(func() {
		repo.Close(context.Background())
	})
	return repo
}

func TestSQLRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) SiteDataRepository {
		return setupTestDB(t)
	})
}

func TestSQLRepositoryTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("should roll back a failed replace", func(t *testing.T) {
		repo := setupTestDB(t)
		original := testSiteData()
		if err := repo.Replace(ctx, original); err != nil {
			t.Fatalf("seeding: %v", err)
		}

		broken := testSiteData()
		broken.Projects = []models.Project{{ID: "p9", Title: "Half written"}}
		broken.Team = []models.TeamMember{{ID: "t1", Name: "First"}, {ID: "t1", Name: "Clash"}}

		if err := repo.Replace(ctx, broken); err == nil {
			t.Fatalf("\nwanted:\nprimary key error\ngot:\nnil")
		}

		got, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, original, got)
	})

	t.Run("should reopen an existing database without re-running migrations", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "reopen.db")
		db, err := OpenSQLite(dbPath, 1)
		if err != nil {
			t.Fatalf("opening: %v", err)
		}
		first := NewSQLRepository(db)
		if err := first.Replace(ctx, testSiteData()); err != nil {
			t.Fatalf("replace: %v", err)
		}
		first.Close(ctx)

		db, err = OpenSQLite(dbPath, 1)
		if err != nil {
			t.Fatalf("reopening: %v", err)
		}
		second := NewSQLRepository(db)
		defer second.Close(ctx)

		got, err := second.Get(ctx)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, testSiteData(), got)
	})
}

func TestJSONColumn(t *testing.T) {
	t.Run("should scan null as the zero value", func(t *testing.T) {
		c := jsonColumn[[]string]{V: []string{"stale"}}
		if err := c.Scan(nil); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, []string(nil), c.V)
	})

	t.Run("should reject non-text values", func(t *testing.T) {
		var c jsonColumn[models.Stats]
		if err := c.Scan(int64(7)); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}
