package services

import (
	"context"
	"errors"
	"fmt"

	"viukon-cms/logging"
	"viukon-cms/models"
	"viukon-cms/repositories"
)

var ErrInvalidDocument = errors.New("invalid site data document")

// InvalidDocumentError wraps the validation problems of a rejected write.
type InvalidDocumentError struct {
	Validation *models.ValidationError
}

func (e *InvalidDocumentError) Error() string {
	return e.Validation.Error()
}

func (e *InvalidDocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Validation
}

type SiteDataService struct {
	repo repositories.SiteDataRepository
}

func NewSiteDataService(repo repositories.SiteDataRepository) *SiteDataService {
	return &SiteDataService{repo: repo}
}

// GetSiteData returns the stored document, seeding the default document on
// the first read of an empty store.
func (s *SiteDataService) GetSiteData(ctx context.Context) (*models.SiteData, error) {
	doc, err := s.repo.Get(ctx)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		logging.Logger.Errorf("Event ID: SITEDATA_FETCH_FAILED, Description: Failed to fetch site data: %v", err)
		return nil, fmt.Errorf("fetching site data: %w", err)
	}

	seed := models.DefaultSiteData()
	err = s.repo.Create(ctx, seed)
	switch {
	case err == nil:
		logging.Logger.Infof("Event ID: SITEDATA_SEEDED, Description: Empty store seeded with default site data")
		return seed, nil
	case errors.Is(err, repositories.ErrAlreadyExists):
		// Another request seeded first.
		logging.Logger.Debugf("Event ID: SITEDATA_SEED_RACE, Description: Site data already seeded, re-reading")
		doc, err = s.repo.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("re-reading seeded site data: %w", err)
		}
		return doc, nil
	default:
		logging.Logger.Errorf("Event ID: SITEDATA_SEED_FAILED, Description: Failed to seed site data: %v", err)
		return nil, fmt.Errorf("seeding site data: %w", err)
	}
}

// ReplaceSiteData validates doc and overwrites the stored document with it.
func (s *SiteDataService) ReplaceSiteData(ctx context.Context, doc *models.SiteData) (*models.SiteData, error) {
	doc.Normalize()

	if err := doc.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			logging.Logger.Warnf("Event ID: SITEDATA_INVALID, Description: Rejected site data write: %v", verr)
			return nil, &InvalidDocumentError{Validation: verr}
		}
		return nil, err
	}

	if err := s.repo.Replace(ctx, doc); err != nil {
		logging.Logger.Errorf("Event ID: SITEDATA_REPLACE_FAILED, Description: Failed to replace site data: %v", err)
		return nil, fmt.Errorf("replacing site data: %w", err)
	}

	logging.Logger.Infof("Event ID: SITEDATA_REPLACED, Description: Site data replaced with %d projects and %d team members", len(doc.Projects), len(doc.Team))
	return doc, nil
}

func (s *SiteDataService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
