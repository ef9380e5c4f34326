package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/database"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

type BookingModel struct {
	ID           string     `gorm:"column:id;primaryKey;size:64"`
	RoomID       string     `gorm:"column:room_id;size:64;not null;index:idx_bookings_room_status,priority:1"`
	UserID       string     `gorm:"column:user_id;size:64;not null;index"`
	HotelID      string     `gorm:"column:hotel_id;size:64;not null;index"`
	CheckInDate  time.Time  `gorm:"column:check_in_date;type:date;not null"`
	CheckOutDate time.Time  `gorm:"column:check_out_date;type:date;not null"`
	Guests       int        `gorm:"column:guests;not null"`
	TotalPrice   float64    `gorm:"column:total_price;not null"`
	Status       string     `gorm:"column:status;size:16;not null;index:idx_bookings_room_status,priority:2"`
	BookingDate  time.Time  `gorm:"column:booking_date;not null"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at"`
}

func (BookingModel) TableName() string { return "bookings" }

func toDomainBooking(m BookingModel) *Booking {
	var cancelledAt *time.Time
	if m.CancelledAt != nil {
		t := m.CancelledAt.UTC()
		cancelledAt = &t
	}
	return &Booking{
		ID:          m.ID,
		RoomID:      m.RoomID,
		UserID:      m.UserID,
		HotelID:     m.HotelID,
		CheckIn:     StartOfDay(m.CheckInDate),
		CheckOut:    StartOfDay(m.CheckOutDate),
		Guests:      m.Guests,
		TotalPrice:  m.TotalPrice,
		Status:      BookingStatus(m.Status),
		BookingDate: m.BookingDate.UTC(),
		CancelledAt: cancelledAt,
	}
}

func toBookingModel(b *Booking) BookingModel {
	return BookingModel{
		ID:           b.ID,
		RoomID:       b.RoomID,
		UserID:       b.UserID,
		HotelID:      b.HotelID,
		CheckInDate:  b.CheckIn,
		CheckOutDate: b.CheckOut,
		Guests:       b.Guests,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		BookingDate:  b.BookingDate,
		CancelledAt:  b.CancelledAt,
	}
}

// CreateIfAvailable checks for an overlapping confirmed booking and inserts b
// in one transaction. The room row is locked first so concurrent bookings of
// the same room queue up on PostgreSQL; the exclusion constraint is the backstop.
func (r *bookingRepository) CreateIfAvailable(ctx context.Context, b *Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roomIDs []string
		if err := tx.Table("rooms").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", b.RoomID).
			Pluck("id", &roomIDs).Error; err != nil {
			return err
		}
		if len(roomIDs) == 0 {
			return ErrRoomNotFound
		}

		var conflicts int64
		if err := tx.Model(&BookingModel{}).
			Where("room_id = ? AND status = ?", b.RoomID, string(StatusConfirmed)).
			Where("check_in_date < ? AND check_out_date > ?", b.CheckOut, b.CheckIn).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return ErrRoomNotAvailable
		}

		m := toBookingModel(b)
		return tx.Create(&m).Error
	})
	if database.IsExclusionViolation(err) {
		return ErrRoomNotAvailable
	}
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var m BookingModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	return toDomainBooking(m), nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string, status *BookingStatus) ([]Booking, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var rows []BookingModel
	if err := q.Order("booking_date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// Cancel flips a confirmed booking to cancelled. A booking that is no longer
// confirmed yields ErrAlreadyCancelled.
func (r *bookingRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND status = ?", id, string(StatusConfirmed)).
		Updates(map[string]any{
			"status":       string(StatusCancelled),
			"cancelled_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyCancelled
	}
	return nil
}
