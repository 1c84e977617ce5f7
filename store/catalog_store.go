package store

import (
	"context"

	"github.com/pureaura/clinic-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogStore owns the reference data maintained by the bootstrap seeder.
// Every upsert keys on the entity's primary identity, so reruns update in
// place instead of duplicating rows.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) upsert(ctx context.Context, records any) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(records).Error
}

func (s *CatalogStore) UpsertServices(ctx context.Context, services []models.Service) error {
	return s.upsert(ctx, &services)
}

func (s *CatalogStore) UpsertStaff(ctx context.Context, staff []models.Staff) error {
	return s.upsert(ctx, &staff)
}

func (s *CatalogStore) UpsertGallery(ctx context.Context, items []models.GalleryItem) error {
	return s.upsert(ctx, &items)
}

func (s *CatalogStore) UpsertReviews(ctx context.Context, reviews []models.Review) error {
	return s.upsert(ctx, &reviews)
}

func (s *CatalogStore) UpsertSettings(ctx context.Context, settings []models.Setting) error {
	return s.upsert(ctx, &settings)
}
