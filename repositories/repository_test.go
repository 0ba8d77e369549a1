package repositories

import (
	"context"
	"errors"
	"testing"

	"viukon-cms/models"

	"github.com/go-playground/assert/v2"
)

func testSiteData() *models.SiteData {
	doc := models.DefaultSiteData()
	doc.Projects = []models.Project{
		{ID: "p1", Title: "Aura Fitness", Category: "Brand Identity", Img: "https://example.com/a.jpg", Tags: []string{"Strategy", "SEO"}},
		{ID: "p2", Title: "Neon Vault", Category: "E-Commerce", Description: "Storefront", Img: "https://example.com/b.jpg", Tags: []string{}, Link: "https://neon.example.com", Featured: true},
	}
	doc.Team = []models.TeamMember{
		{ID: "t1", Name: "Alex Thorne", Role: "Founder & CEO", Img: "https://example.com/alex.jpg"},
		{ID: "t2", Name: "Sarah Chen", Role: "Head of Creative", Img: "https://example.com/sarah.jpg"},
	}
	doc.TrustedBrands = []string{"FINTECH", "IMOS", "FINTECH"}
	doc.Contact.Phone = "+44 20 0000 0000"
	doc.About.TeamOrder = []string{"t2", "t1"}
	doc.About.ProjectOrder = []string{"p2", "gone", "p1"}
	return doc
}

// runRepositoryContract exercises the behaviour every SiteDataRepository shares.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) SiteDataRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("should return ErrNotFound on an empty store", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Get(ctx)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNotFound, err)
		}
	})

	t.Run("should create once and refuse a second create", func(t *testing.T) {
		repo := newRepo(t)

		if err := repo.Create(ctx, models.DefaultSiteData()); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		err := repo.Create(ctx, testSiteData())
		if !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrAlreadyExists, err)
		}

		got, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, models.DefaultSiteData(), got)
	})

	t.Run("should create the document on replace when absent", func(t *testing.T) {
		repo := newRepo(t)
		want := testSiteData()

		if err := repo.Replace(ctx, want); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		got, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, want, got)
	})

	t.Run("should overwrite the whole document and keep collection order", func(t *testing.T) {
		repo := newRepo(t)
		if err := repo.Replace(ctx, testSiteData()); err != nil {
			t.Fatalf("seeding: %v", err)
		}

		want := testSiteData()
		want.Projects = []models.Project{want.Projects[1], {ID: "p3", Title: "Kinetix Hub", Tags: []string{"Mobile"}}}
		want.Team = want.Team[:1]
		want.Hero.Title = "ENGINEERING"
		want.Stats.Clients = 90
		want.About.TeamOrder = nil

		if err := repo.Replace(ctx, want); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		got, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, want, got)
	})

	t.Run("should be stable across a get and replace round trip", func(t *testing.T) {
		repo := newRepo(t)
		if err := repo.Replace(ctx, testSiteData()); err != nil {
			t.Fatalf("seeding: %v", err)
		}

		first, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("first get: %v", err)
		}
		if err := repo.Replace(ctx, first); err != nil {
			t.Fatalf("replace: %v", err)
		}
		second, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("second get: %v", err)
		}
		assert.Equal(t, first, second)
	})

	t.Run("should not share state with callers", func(t *testing.T) {
		repo := newRepo(t)
		doc := testSiteData()
		if err := repo.Replace(ctx, doc); err != nil {
			t.Fatalf("replace: %v", err)
		}
		doc.Projects[0].Title = "mutated after write"

		got, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		assert.Equal(t, "Aura Fitness", got.Projects[0].Title)

		got.Team[0].Name = "mutated after read"
		again, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		assert.Equal(t, "Alex Thorne", again.Team[0].Name)
	})

	t.Run("should ping", func(t *testing.T) {
		repo := newRepo(t)
		assert.Equal(t, nil, repo.Ping(ctx))
	})
}

func TestMemoryRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) SiteDataRepository {
		return NewMemoryRepository()
	})
}
