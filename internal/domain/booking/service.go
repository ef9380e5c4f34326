package booking

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"hotelbooking/internal/domain/auth"
	"hotelbooking/internal/domain/catalog"
	"hotelbooking/internal/observability"
	"hotelbooking/internal/pkg/ids"
)

// Events pushed to the hotel owner.
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

type Service struct {
	users    UserReader
	rooms    RoomReader
	hotels   HotelReader
	bookings BookingRepository
	notifier Notifier
	now      func() time.Time
}

func NewService(
	users UserReader,
	rooms RoomReader,
	hotels HotelReader,
	bookings BookingRepository,
	notifier Notifier,
) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Service{
		users:    users,
		rooms:    rooms,
		hotels:   hotels,
		bookings: bookings,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) caller(ctx context.Context, callerID string) (*auth.User, error) {
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) BookRoom(ctx context.Context, callerID string, req CreateBookingRequest) (b *Booking, err error) {
	defer func() { observability.ObserveBooking(bookingResult(err)) }()

	user, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	checkIn, err := ParseDate(req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	today := StartOfDay(s.now())
	if !checkIn.Before(checkOut) || checkIn.Before(today) {
		return nil, ErrInvalidDates
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, catalog.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	hotel, err := s.hotels.GetByID(ctx, room.HotelID)
	if err != nil {
		return nil, err
	}
	if user.IsOwner() && hotel.OwnerID == user.ID {
		return nil, ErrForbidden
	}

	if req.Guests > room.MaxOccupancy {
		return nil, ErrInvalidCapacity
	}

	b = &Booking{
		ID:          ids.New(ids.PrefixBooking),
		RoomID:      room.ID,
		UserID:      user.ID,
		HotelID:     room.HotelID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      req.Guests,
		TotalPrice:  TotalPrice(Nights(checkIn, checkOut), room.PricePerNight),
		Status:      StatusConfirmed,
		BookingDate: s.now().UTC(),
	}
	if err := s.bookings.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	s.notifier.Notify(hotel.OwnerID, EventBookingCreated, ToBookingResponse(b))
	return b, nil
}

func (s *Service) ListMyBookings(ctx context.Context, callerID string, status *BookingStatus) ([]Booking, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if _, err := s.caller(ctx, callerID); err != nil {
		return nil, err
	}
	return s.bookings.ListByUser(ctx, callerID, status)
}

// CancelBooking is allowed for the booking's guest until the check-in day.
func (s *Service) CancelBooking(ctx context.Context, callerID, bookingID string) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != callerID {
		return nil, ErrForbidden
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	now := s.now().UTC()
	if !StartOfDay(now).Before(b.CheckIn) {
		return nil, ErrCancellationDeadline
	}

	if err := s.bookings.Cancel(ctx, b.ID, now); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled
	b.CancelledAt = &now

	if hotel, err := s.hotels.GetByID(ctx, b.HotelID); err == nil {
		s.notifier.Notify(hotel.OwnerID, EventBookingCancelled, ToBookingResponse(b))
	} else {
		log.Warn().Err(err).Str("booking_id", b.ID).Msg("cancel notification skipped")
	}
	return b, nil
}

func bookingResult(err error) string {
	switch {
	case err == nil:
		return observability.ResultCreated
	case errors.Is(err, ErrRoomNotAvailable):
		return observability.ResultNotAvailable
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidDates),
		errors.Is(err, ErrInvalidCapacity), errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrForbidden), errors.Is(err, ErrUnauthorized):
		return observability.ResultInvalid
	default:
		return observability.ResultError
	}
}
