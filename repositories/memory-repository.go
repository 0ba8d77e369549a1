package repositories

import (
	"context"
	"sync"

	"viukon-cms/models"
)

var _ SiteDataRepository = (*MemoryRepository)(nil)

// MemoryRepository keeps the document in process memory. Callers always
// receive and hand over copies.
type MemoryRepository struct {
	mu  sync.RWMutex
	doc *models.SiteData
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(ctx context.Context) (*models.SiteData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.doc == nil {
		return nil, ErrNotFound
	}
	return r.doc.Clone(), nil
}

func (r *MemoryRepository) Create(ctx context.Context, doc *models.SiteData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.doc != nil {
		return ErrAlreadyExists
	}
	r.doc = doc.Clone()
	return nil
}

func (r *MemoryRepository) Replace(ctx context.Context, doc *models.SiteData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc = doc.Clone()
	return nil
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}
