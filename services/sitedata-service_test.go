package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"viukon-cms/models"
	"viukon-cms/repositories"

	"github.com/go-playground/assert/v2"
)

// countingRepository counts Create calls and can fail Replace.
type countingRepository struct {
	*repositories.MemoryRepository
	creates    atomic.Int32
	replaceErr error
}

func (r *countingRepository) Create(ctx context.Context, doc *models.SiteData) error {
	r.creates.Add(1)
	return r.MemoryRepository.Create(ctx, doc)
}

func (r *countingRepository) Replace(ctx context.Context, doc *models.SiteData) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	return r.MemoryRepository.Replace(ctx, doc)
}

func newCountingRepository() *countingRepository {
	return &countingRepository{MemoryRepository: repositories.NewMemoryRepository()}
}

func TestGetSiteData(t *testing.T) {
	ctx := context.Background()

	t.Run("should seed the default document on first read", func(t *testing.T) {
		repo := newCountingRepository()
		service := NewSiteDataService(repo)

		got, err := service.GetSiteData(ctx)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, models.DefaultSiteData(), got)

		stored, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, models.DefaultSiteData(), stored)
	})

	t.Run("should seed only once under concurrent first reads", func(t *testing.T) {
		repo := newCountingRepository()
		service := NewSiteDataService(repo)

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := service.GetSiteData(ctx); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		edited := models.DefaultSiteData()
		edited.Hero.Title = "EDITED"
		if _, err := service.ReplaceSiteData(ctx, edited); err != nil {
			t.Fatalf("replace: %v", err)
		}

		got, err := service.GetSiteData(ctx)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, "EDITED", got.Hero.Title)
		if n := repo.creates.Load(); n < 1 || n > 20 {
			t.Fatalf("\nwanted:\nbetween 1 and 20 creates\ngot:\n%d", n)
		}
	})

	t.Run("should not reseed a stored document", func(t *testing.T) {
		repo := newCountingRepository()
		service := NewSiteDataService(repo)

		if _, err := service.GetSiteData(ctx); err != nil {
			t.Fatal(err)
		}
		if _, err := service.GetSiteData(ctx); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, int32(1), repo.creates.Load())
	})
}

func TestReplaceSiteData(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and return the normalized document", func(t *testing.T) {
		repo := newCountingRepository()
		service := NewSiteDataService(repo)

		doc := models.DefaultSiteData()
		doc.TrustedBrands = nil
		doc.Projects = []models.Project{{ID: "p1", Title: "Aura"}}

		got, err := service.ReplaceSiteData(ctx, doc)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, []string{}, got.TrustedBrands)
		assert.Equal(t, []string{}, got.Projects[0].Tags)

		stored, err := repo.Get(ctx)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, got, stored)
	})

	t.Run("should reject duplicate ids without writing", func(t *testing.T) {
		repo := newCountingRepository()
		service := NewSiteDataService(repo)

		doc := models.DefaultSiteData()
		doc.Team = []models.TeamMember{{ID: "t1"}, {ID: "t1"}}

		_, err := service.ReplaceSiteData(ctx, doc)
		if !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrInvalidDocument, err)
		}

		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("\nwanted:\n*models.ValidationError\ngot:\n%T", err)
		}
		assert.Equal(t, "team[1].id", verr.Problems[0].Field)

		_, err = repo.Get(ctx)
		if !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", repositories.ErrNotFound, err)
		}
	})

	t.Run("should surface store failures", func(t *testing.T) {
		repo := newCountingRepository()
		repo.replaceErr = errors.New("disk full")
		service := NewSiteDataService(repo)

		_, err := service.ReplaceSiteData(ctx, models.DefaultSiteData())
		if err == nil || errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("\nwanted:\nstore error\ngot:\n%v", err)
		}
	})
}
