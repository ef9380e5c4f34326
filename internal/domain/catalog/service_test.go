package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain/auth"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByID(ctx context.Context, id string) (*auth.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

type mockHotels struct{ mock.Mock }

func (m *mockHotels) Create(ctx context.Context, hotel *Hotel) error {
	return m.Called(ctx, hotel).Error(0)
}

func (m *mockHotels) GetByID(ctx context.Context, id string) (*Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Hotel), args.Error(1)
}

func (m *mockHotels) GetWithRooms(ctx context.Context, id string) (*Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Hotel), args.Error(1)
}

func (m *mockHotels) List(ctx context.Context, f HotelFilters) ([]HotelSummary, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]HotelSummary), args.Error(1)
}

type mockRooms struct{ mock.Mock }

func (m *mockRooms) Create(ctx context.Context, room *Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRooms) ExistsByNumber(ctx context.Context, hotelID, roomNumber string) (bool, error) {
	args := m.Called(ctx, hotelID, roomNumber)
	return args.Bool(0), args.Error(1)
}

var (
	owner    = &auth.User{ID: "usr_owner", Role: auth.RoleOwner}
	other    = &auth.User{ID: "usr_other", Role: auth.RoleOwner}
	customer = &auth.User{ID: "usr_cust", Role: auth.RoleCustomer}
)

func price(v float64) *float64 { return &v }

func TestCreateHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner creates with zero rating", func(t *testing.T) {
		users, hotels := new(mockUsers), new(mockHotels)
		users.On("GetByID", ctx, owner.ID).Return(owner, nil)
		hotels.On("Create", ctx, mock.AnythingOfType("*catalog.Hotel")).Return(nil)

		svc := NewService(users, hotels, new(mockRooms))
		hotel, err := svc.CreateHotel(ctx, owner.ID, CreateHotelRequest{Name: "Sea", City: "Nice", Country: "FR"})

		require.NoError(t, err)
		assert.Regexp(t, `^hotel_`, hotel.ID)
		assert.Equal(t, owner.ID, hotel.OwnerID)
		assert.Zero(t, hotel.Rating)
		assert.Zero(t, hotel.TotalReviews)
		assert.NotNil(t, hotel.Amenities)
	})

	t.Run("customer forbidden", func(t *testing.T) {
		users, hotels := new(mockUsers), new(mockHotels)
		users.On("GetByID", ctx, customer.ID).Return(customer, nil)

		_, err := NewService(users, hotels, new(mockRooms)).CreateHotel(ctx, customer.ID, CreateHotelRequest{Name: "x"})
		assert.ErrorIs(t, err, ErrForbidden)
		hotels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown caller", func(t *testing.T) {
		users := new(mockUsers)
		users.On("GetByID", ctx, "usr_ghost").Return(nil, auth.ErrUserNotFound)

		_, err := NewService(users, new(mockHotels), new(mockRooms)).CreateHotel(ctx, "usr_ghost", CreateHotelRequest{})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAddRoom(t *testing.T) {
	ctx := context.Background()
	hotel := &Hotel{ID: "hotel_1", OwnerID: owner.ID}
	req := CreateRoomRequest{RoomNumber: "101", RoomType: "double", PricePerNight: price(120), MaxOccupancy: 2}

	t.Run("hotel missing", func(t *testing.T) {
		hotels := new(mockHotels)
		hotels.On("GetByID", ctx, "hotel_x").Return(nil, ErrHotelNotFound)

		_, err := NewService(new(mockUsers), hotels, new(mockRooms)).AddRoom(ctx, "hotel_x", owner.ID, req)
		assert.ErrorIs(t, err, ErrHotelNotFound)
	})

	t.Run("owner of another hotel is forbidden", func(t *testing.T) {
		users, hotels := new(mockUsers), new(mockHotels)
		hotels.On("GetByID", ctx, hotel.ID).Return(hotel, nil)
		users.On("GetByID", ctx, other.ID).Return(other, nil)

		_, err := NewService(users, hotels, new(mockRooms)).AddRoom(ctx, hotel.ID, other.ID, req)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("duplicate room number", func(t *testing.T) {
		users, hotels, rooms := new(mockUsers), new(mockHotels), new(mockRooms)
		hotels.On("GetByID", ctx, hotel.ID).Return(hotel, nil)
		users.On("GetByID", ctx, owner.ID).Return(owner, nil)
		rooms.On("ExistsByNumber", ctx, hotel.ID, "101").Return(true, nil)

		_, err := NewService(users, hotels, rooms).AddRoom(ctx, hotel.ID, owner.ID, req)
		assert.ErrorIs(t, err, ErrRoomAlreadyExists)
		rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		users, hotels, rooms := new(mockUsers), new(mockHotels), new(mockRooms)
		hotels.On("GetByID", ctx, hotel.ID).Return(hotel, nil)
		users.On("GetByID", ctx, owner.ID).Return(owner, nil)
		rooms.On("ExistsByNumber", ctx, hotel.ID, "101").Return(false, nil)
		rooms.On("Create", ctx, mock.AnythingOfType("*catalog.Room")).Return(nil)

		room, err := NewService(users, hotels, rooms).AddRoom(ctx, hotel.ID, owner.ID, req)
		require.NoError(t, err)
		assert.Regexp(t, `^room_`, room.ID)
		assert.Equal(t, 120.0, room.PricePerNight)
		assert.Equal(t, hotel.ID, room.HotelID)
	})
}

func TestListHotels_RequiresKnownCaller(t *testing.T) {
	ctx := context.Background()
	users, hotels := new(mockUsers), new(mockHotels)
	users.On("GetByID", ctx, "usr_ghost").Return(nil, auth.ErrUserNotFound)

	_, err := NewService(users, hotels, new(mockRooms)).ListHotels(ctx, "usr_ghost", HotelFilters{})
	assert.ErrorIs(t, err, ErrUnauthorized)
	hotels.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
