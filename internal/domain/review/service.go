package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelbooking/internal/domain/auth"
	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/domain/catalog"
	"hotelbooking/internal/observability"
	"hotelbooking/internal/pkg/ids"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type UserReader interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
}

type HotelReader interface {
	GetByID(ctx context.Context, id string) (*catalog.Hotel, error)
}

type ReviewStore interface {
	CreateAndRate(ctx context.Context, rv *Review) error
	ListByHotel(ctx context.Context, hotelID string, limit, offset int) ([]Review, error)
}

type Service struct {
	users    UserReader
	bookings BookingReader
	hotels   HotelReader
	reviews  ReviewStore
	now      func() time.Time
}

func NewService(users UserReader, bookings BookingReader, hotels HotelReader, reviews ReviewStore) *Service {
	return &Service{
		users:    users,
		bookings: bookings,
		hotels:   hotels,
		reviews:  reviews,
		now:      time.Now,
	}
}

// PostReview records a review for a completed stay and updates the hotel rating.
func (s *Service) PostReview(ctx context.Context, callerID string, req CreateReviewRequest) (rv *Review, err error) {
	defer func() { observability.ObserveReview(reviewResult(err)) }()

	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if req.Rating < MinRating || req.Rating > MaxRating {
		return nil, ErrInvalidRating
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != callerID {
		return nil, ErrForbidden
	}
	if b.Status == booking.StatusCancelled || s.now().UTC().Before(b.CheckOut) {
		return nil, ErrBookingNotEligible
	}

	rv = &Review{
		ID:        ids.New(ids.PrefixReview),
		UserID:    callerID,
		HotelID:   b.HotelID,
		BookingID: b.ID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: s.now().UTC(),
	}
	if err := s.reviews.CreateAndRate(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListHotelReviews(ctx context.Context, hotelID string, limit, offset int) ([]Review, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, catalog.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return s.reviews.ListByHotel(ctx, hotelID, limit, offset)
}

func reviewResult(err error) string {
	switch {
	case err == nil:
		return observability.ResultCreated
	case errors.Is(err, ErrAlreadyReviewed):
		return observability.ResultAlreadyReviewed
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden),
		errors.Is(err, ErrInvalidRating), errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrBookingNotEligible), errors.Is(err, ErrHotelNotFound):
		return observability.ResultInvalid
	default:
		return observability.ResultError
	}
}
