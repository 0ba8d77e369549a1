package repositories

import (
	"context"
	"errors"

	"viukon-cms/models"
)

var (
	ErrNotFound      = errors.New("site data not found")
	ErrAlreadyExists = errors.New("site data already exists")
)

// SiteDataRepository stores the single site-data document.
type SiteDataRepository interface {
	// Get returns the stored document or ErrNotFound.
	Get(ctx context.Context) (*models.SiteData, error)
	// Create stores doc only if no document exists yet, otherwise ErrAlreadyExists.
	Create(ctx context.Context, doc *models.SiteData) error
	// Replace overwrites the whole document, creating it when absent.
	Replace(ctx context.Context, doc *models.SiteData) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
