package review

import (
	"math"
	"time"
)

type Review struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    string `gorm:"size:64;not null;index"`
	HotelID   string `gorm:"size:64;not null;index:idx_reviews_hotel_created,priority:1"`
	BookingID string `gorm:"size:64;not null;uniqueIndex"`
	Rating    int    `gorm:"not null"`
	Comment   string
	CreatedAt time.Time `gorm:"index:idx_reviews_hotel_created,priority:2"`
}

func (Review) TableName() string { return "reviews" }

const (
	MinRating = 1
	MaxRating = 5
)

// NextRating folds one more rating into a running average, rounded to one decimal.
func NextRating(oldRating float64, oldCount, rating int) float64 {
	avg := (oldRating*float64(oldCount) + float64(rating)) / float64(oldCount+1)
	return math.Round(avg*10) / 10
}
