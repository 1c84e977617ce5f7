package store

import (
	"context"

	"github.com/pureaura/clinic-backend/models"
	"gorm.io/gorm"
)

type SettingStore struct {
	db *gorm.DB
}

func NewSettingStore(db *gorm.DB) *SettingStore {
	return &SettingStore{db: db}
}

func (s *SettingStore) Get(ctx context.Context, key string) (string, error) {
	var setting models.Setting
	if err := s.db.WithContext(ctx).First(&setting, "key = ?", key).Error; err != nil {
		return "", err
	}
	return setting.Value, nil
}

// GetOr falls back when the key is absent or the lookup fails; callers that
// need to distinguish use Get.
func (s *SettingStore) GetOr(ctx context.Context, key, fallback string) string {
	value, err := s.Get(ctx, key)
	if err != nil {
		return fallback
	}
	return value
}
