package store

import (
	"context"
	"math"
	"time"

	"github.com/pureaura/clinic-backend/models"
	"gorm.io/gorm"
)

const featuredReviewLimit = 6

// ReviewSummary is the public projection of a review. Email is deliberately
// absent from the column list.
type ReviewSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingCount struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type ReviewStats struct {
	AverageRating   float64       `json:"averageRating"`
	TotalReviews    int64         `json:"totalReviews"`
	RatingBreakdown []RatingCount `json:"ratingBreakdown"`
}

type ReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) Create(ctx context.Context, r *models.Review) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *ReviewStore) ListApproved(ctx context.Context) ([]ReviewSummary, error) {
	var reviews []ReviewSummary
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("is_approved = ?", true).
		Order("created_at desc").
		Select("id, name, rating, title, content, created_at").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewStore) ListFeatured(ctx context.Context) ([]ReviewSummary, error) {
	var reviews []ReviewSummary
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("is_approved = ? AND rating >= ?", true, 4).
		Order("created_at desc").
		Limit(featuredReviewLimit).
		Select("id, name, rating, title, content, created_at").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Stats aggregates over approved reviews only. The same is_approved column
// gates every review read path.
func (s *ReviewStore) Stats(ctx context.Context) (*ReviewStats, error) {
	var agg struct {
		Avg   float64
		Total int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("is_approved = ?", true).
		Select("coalesce(avg(rating), 0) as avg, count(*) as total").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	breakdown := []RatingCount{}
	err = s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("is_approved = ?", true).
		Select("rating, count(*) as count").
		Group("rating").
		Order("rating desc").
		Scan(&breakdown).Error
	if err != nil {
		return nil, err
	}

	return &ReviewStats{
		AverageRating:   math.Round(agg.Avg*10) / 10,
		TotalReviews:    agg.Total,
		RatingBreakdown: breakdown,
	}, nil
}
