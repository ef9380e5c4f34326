package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain/auth"
	"hotelbooking/internal/domain/catalog"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByID(ctx context.Context, id string) (*auth.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

type mockRooms struct{ mock.Mock }

func (m *mockRooms) GetByID(ctx context.Context, id string) (*catalog.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Room), args.Error(1)
}

type mockHotels struct{ mock.Mock }

func (m *mockHotels) GetByID(ctx context.Context, id string) (*catalog.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Hotel), args.Error(1)
}

type mockBookings struct{ mock.Mock }

func (m *mockBookings) CreateIfAvailable(ctx context.Context, b *Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookings) GetByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockBookings) ListByUser(ctx context.Context, userID string, status *BookingStatus) ([]Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *mockBookings) Cancel(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type recordedEvent struct {
	userID, event string
	payload       any
}

type recordingNotifier struct{ events []recordedEvent }

func (n *recordingNotifier) Notify(userID, event string, payload any) {
	n.events = append(n.events, recordedEvent{userID, event, payload})
}

var (
	fixedNow = time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)
	guest    = &auth.User{ID: "usr_guest", Role: auth.RoleCustomer}
	owner    = &auth.User{ID: "usr_owner", Role: auth.RoleOwner}
	hotel    = &catalog.Hotel{ID: "hotel_1", OwnerID: owner.ID}
	room     = &catalog.Room{ID: "room_1", HotelID: hotel.ID, PricePerNight: 150, MaxOccupancy: 2}
)

type fixture struct {
	users    *mockUsers
	rooms    *mockRooms
	hotels   *mockHotels
	bookings *mockBookings
	notifier *recordingNotifier
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		users:    new(mockUsers),
		rooms:    new(mockRooms),
		hotels:   new(mockHotels),
		bookings: new(mockBookings),
		notifier: &recordingNotifier{},
	}
	f.svc = NewService(f.users, f.rooms, f.hotels, f.bookings, f.notifier)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) withRoom() {
	f.rooms.On("GetByID", mock.Anything, room.ID).Return(room, nil)
	f.hotels.On("GetByID", mock.Anything, hotel.ID).Return(hotel, nil)
}

func TestBookRoom_Success(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, guest.ID).Return(guest, nil)
	f.withRoom()
	f.bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil)

	b, err := f.svc.BookRoom(context.Background(), guest.ID, CreateBookingRequest{
		RoomID: room.ID, CheckInDate: "2025-01-01", CheckOutDate: "2025-01-03", Guests: 2,
	})

	require.NoError(t, err)
	assert.Regexp(t, `^booking_`, b.ID)
	assert.Equal(t, 300.0, b.TotalPrice)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, hotel.ID, b.HotelID)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), b.CheckIn)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, owner.ID, f.notifier.events[0].userID)
	assert.Equal(t, EventBookingCreated, f.notifier.events[0].event)
}

func TestBookRoom_Validation(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateBookingRequest
		wantErr error
	}{
		{"unparseable check-in", CreateBookingRequest{RoomID: room.ID, CheckInDate: "soon", CheckOutDate: "2025-01-03", Guests: 1}, ErrInvalidDate},
		{"unparseable check-out", CreateBookingRequest{RoomID: room.ID, CheckInDate: "2025-01-02", CheckOutDate: "later", Guests: 1}, ErrInvalidDate},
		{"check-out equals check-in", CreateBookingRequest{RoomID: room.ID, CheckInDate: "2025-01-02", CheckOutDate: "2025-01-02", Guests: 1}, ErrInvalidDates},
		{"check-out before check-in", CreateBookingRequest{RoomID: room.ID, CheckInDate: "2025-01-05", CheckOutDate: "2025-01-02", Guests: 1}, ErrInvalidDates},
		{"check-in in the past", CreateBookingRequest{RoomID: room.ID, CheckInDate: "2024-12-31", CheckOutDate: "2025-01-02", Guests: 1}, ErrInvalidDates},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.users.On("GetByID", mock.Anything, guest.ID).Return(guest, nil)

			_, err := f.svc.BookRoom(context.Background(), guest.ID, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			f.bookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
		})
	}
}

func TestBookRoom_CapacityExceededPersistsNothing(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, guest.ID).Return(guest, nil)
	f.withRoom()

	_, err := f.svc.BookRoom(context.Background(), guest.ID, CreateBookingRequest{
		RoomID: room.ID, CheckInDate: "2025-01-02", CheckOutDate: "2025-01-03", Guests: 3,
	})

	assert.ErrorIs(t, err, ErrInvalidCapacity)
	f.bookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
	assert.Empty(t, f.notifier.events)
}

func TestBookRoom_OwnerCannotBookOwnHotel(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, owner.ID).Return(owner, nil)
	f.withRoom()

	_, err := f.svc.BookRoom(context.Background(), owner.ID, CreateBookingRequest{
		RoomID: room.ID, CheckInDate: "2025-01-02", CheckOutDate: "2025-01-03", Guests: 1,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBookRoom_RoomMissing(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, guest.ID).Return(guest, nil)
	f.rooms.On("GetByID", mock.Anything, "room_x").Return(nil, catalog.ErrRoomNotFound)

	_, err := f.svc.BookRoom(context.Background(), guest.ID, CreateBookingRequest{
		RoomID: "room_x", CheckInDate: "2025-01-02", CheckOutDate: "2025-01-03", Guests: 1,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestBookRoom_NotAvailable(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, guest.ID).Return(guest, nil)
	f.withRoom()
	f.bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(ErrRoomNotAvailable)

	_, err := f.svc.BookRoom(context.Background(), guest.ID, CreateBookingRequest{
		RoomID: room.ID, CheckInDate: "2025-01-02", CheckOutDate: "2025-01-03", Guests: 1,
	})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Empty(t, f.notifier.events)
}

func TestBookRoom_UnknownCaller(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, "usr_ghost").Return(nil, auth.ErrUserNotFound)

	_, err := f.svc.BookRoom(context.Background(), "usr_ghost", CreateBookingRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCancelBooking(t *testing.T) {
	upcoming := func() *Booking {
		return &Booking{
			ID: "booking_1", UserID: guest.ID, HotelID: hotel.ID, Status: StatusConfirmed,
			CheckIn:  time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("success notifies owner", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", mock.Anything, "booking_1").Return(upcoming(), nil)
		f.bookings.On("Cancel", mock.Anything, "booking_1", fixedNow).Return(nil)
		f.hotels.On("GetByID", mock.Anything, hotel.ID).Return(hotel, nil)

		b, err := f.svc.CancelBooking(context.Background(), guest.ID, "booking_1")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)
		require.NotNil(t, b.CancelledAt)
		require.Len(t, f.notifier.events, 1)
		assert.Equal(t, EventBookingCancelled, f.notifier.events[0].event)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", mock.Anything, "booking_x").Return(nil, ErrNotFound)

		_, err := f.svc.CancelBooking(context.Background(), guest.ID, "booking_x")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", mock.Anything, "booking_1").Return(upcoming(), nil)

		_, err := f.svc.CancelBooking(context.Background(), "usr_other", "booking_1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newFixture()
		b := upcoming()
		b.Status = StatusCancelled
		f.bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)

		_, err := f.svc.CancelBooking(context.Background(), guest.ID, "booking_1")
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("check-in day reached", func(t *testing.T) {
		f := newFixture()
		b := upcoming()
		b.CheckIn = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		f.bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)

		_, err := f.svc.CancelBooking(context.Background(), guest.ID, "booking_1")
		assert.ErrorIs(t, err, ErrCancellationDeadline)
		f.bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListMyBookings(t *testing.T) {
	f := newFixture()
	f.users.On("GetByID", mock.Anything, guest.ID).Return(guest, nil)
	cancelled := StatusCancelled
	f.bookings.On("ListByUser", mock.Anything, guest.ID, &cancelled).Return([]Booking{{ID: "booking_1"}}, nil)

	out, err := f.svc.ListMyBookings(context.Background(), guest.ID, &cancelled)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	bogus := BookingStatus("pending")
	_, err = f.svc.ListMyBookings(context.Background(), guest.ID, &bogus)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBookingResult(t *testing.T) {
	assert.Equal(t, "created", bookingResult(nil))
	assert.Equal(t, "not_available", bookingResult(ErrRoomNotAvailable))
	assert.Equal(t, "invalid", bookingResult(ErrInvalidCapacity))
	assert.Equal(t, "error", bookingResult(errors.New("db down")))
}
