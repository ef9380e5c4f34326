package review

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/database"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type hotelRating struct {
	Rating       float64
	TotalReviews int
}

// CreateAndRate inserts rv and folds its rating into the hotel aggregate in one
// transaction. The hotel row is locked for the duration so concurrent reviews
// of the same hotel apply one after another.
func (r *ReviewRepository) CreateAndRate(ctx context.Context, rv *Review) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hotels []hotelRating
		if err := tx.Table("hotels").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("rating", "total_reviews").
			Where("id = ?", rv.HotelID).
			Find(&hotels).Error; err != nil {
			return err
		}
		if len(hotels) == 0 {
			return ErrHotelNotFound
		}
		current := hotels[0]

		var existing int64
		if err := tx.Model(&Review{}).
			Where("booking_id = ?", rv.BookingID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyReviewed
		}

		if err := tx.Create(rv).Error; err != nil {
			return err
		}

		return tx.Table("hotels").
			Where("id = ?", rv.HotelID).
			Updates(map[string]any{
				"rating":        NextRating(current.Rating, current.TotalReviews, rv.Rating),
				"total_reviews": current.TotalReviews + 1,
			}).Error
	})
	if database.IsUniqueViolation(err) {
		return ErrAlreadyReviewed
	}
	return err
}

// ListByHotel returns reviews newest first.
func (r *ReviewRepository) ListByHotel(ctx context.Context, hotelID string, limit, offset int) ([]Review, error) {
	var rows []Review
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return rows, nil
}
