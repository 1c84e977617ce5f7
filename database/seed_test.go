package database_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/pureaura/clinic-backend/database"
	"github.com/pureaura/clinic-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Service{},
		&models.Staff{},
		&models.GalleryItem{},
		&models.Booking{},
		&models.Review{},
		&models.Setting{},
	))
	return db
}

func tableCounts(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()
	counts := map[string]int64{}
	for name, model := range map[string]any{
		"services": &models.Service{},
		"staff":    &models.Staff{},
		"gallery":  &models.GalleryItem{},
		"reviews":  &models.Review{},
		"settings": &models.Setting{},
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		counts[name] = n
	}
	return counts
}

func TestSeedPopulatesCatalog(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.Seed(db))

	counts := tableCounts(t, db)
	assert.Equal(t, int64(6), counts["services"])
	assert.Equal(t, int64(3), counts["staff"])
	assert.Equal(t, int64(3), counts["gallery"])
	assert.Equal(t, int64(6), counts["reviews"])
	assert.Equal(t, int64(12), counts["settings"])

	var service models.Service
	require.NoError(t, db.First(&service, "id = ?", "hydrafacial").Error)
	assert.Equal(t, "HydraFacial", service.Name)
	assert.Equal(t, 135.00, service.Price)

	var setting models.Setting
	require.NoError(t, db.First(&setting, "key = ?", "clinic_name").Error)
	assert.Equal(t, "Pure Aura Clinic", setting.Value)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, database.Seed(db))
	first := tableCounts(t, db)

	require.NoError(t, database.Seed(db))
	assert.Equal(t, first, tableCounts(t, db))
}

func TestSeedRestoresDriftedRows(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.Seed(db))

	require.NoError(t, db.Model(&models.Service{}).
		Where("id = ?", "antiaging").
		Update("name", "renamed out of band").Error)

	require.NoError(t, database.Seed(db))

	var service models.Service
	require.NoError(t, db.First(&service, "id = ?", "antiaging").Error)
	assert.Equal(t, "Anti-Aging Treatment", service.Name)

	// Same id means update, never a duplicate row.
	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.Equal(t, int64(6), count)
}

func TestSeededReviewsSatisfyPublishingInvariants(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.Seed(db))

	var reviews []models.Review
	require.NoError(t, db.Find(&reviews).Error)
	for _, r := range reviews {
		assert.True(t, r.IsApproved)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}
