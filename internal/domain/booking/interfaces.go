package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain/auth"
	"hotelbooking/internal/domain/catalog"
)

// BookingRepository defines the persistence operations the booking service needs
type BookingRepository interface {
	CreateIfAvailable(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string, status *BookingStatus) ([]Booking, error)
	Cancel(ctx context.Context, id string, at time.Time) error
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
}

type RoomReader interface {
	GetByID(ctx context.Context, id string) (*catalog.Room, error)
}

type HotelReader interface {
	GetByID(ctx context.Context, id string) (*catalog.Hotel, error)
}

// Notifier pushes booking events to a connected user.
type Notifier interface {
	Notify(userID, event string, payload any)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string, any) {}
