package catalog

import (
	"context"
	"errors"
	"strings"

	"hotelbooking/internal/domain/auth"
	"hotelbooking/internal/pkg/ids"
)

type UserReader interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
}

type HotelStore interface {
	Create(ctx context.Context, hotel *Hotel) error
	GetByID(ctx context.Context, id string) (*Hotel, error)
	GetWithRooms(ctx context.Context, id string) (*Hotel, error)
	List(ctx context.Context, f HotelFilters) ([]HotelSummary, error)
}

type RoomStore interface {
	Create(ctx context.Context, room *Room) error
	ExistsByNumber(ctx context.Context, hotelID, roomNumber string) (bool, error)
}

type Service struct {
	users  UserReader
	hotels HotelStore
	rooms  RoomStore
}

func NewService(users UserReader, hotels HotelStore, rooms RoomStore) *Service {
	return &Service{users: users, hotels: hotels, rooms: rooms}
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

// AuthorizeHotelCreate resolves the caller and requires role=owner.
func (s *Service) AuthorizeHotelCreate(ctx context.Context, callerID string) (*auth.User, error) {
	user, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !user.IsOwner() {
		return nil, ErrForbidden
	}
	return user, nil
}

func (s *Service) CreateHotel(ctx context.Context, callerID string, req CreateHotelRequest) (*Hotel, error) {
	user, err := s.AuthorizeHotelCreate(ctx, callerID)
	if err != nil {
		return nil, err
	}

	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	hotel := &Hotel{
		ID:          ids.New(ids.PrefixHotel),
		OwnerID:     user.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
		Amenities:   amenities,
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// AuthorizeRoomAdd checks, in order, that the hotel exists, the caller exists,
// and the caller owns the hotel.
func (s *Service) AuthorizeRoomAdd(ctx context.Context, hotelID, callerID string) (*Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	user, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !user.IsOwner() || hotel.OwnerID != user.ID {
		return nil, ErrForbidden
	}
	return hotel, nil
}

// AddRoom requires the caller to be an owner and the owner of this hotel.
func (s *Service) AddRoom(ctx context.Context, hotelID, callerID string, req CreateRoomRequest) (*Room, error) {
	hotel, err := s.AuthorizeRoomAdd(ctx, hotelID, callerID)
	if err != nil {
		return nil, err
	}

	roomNumber := strings.TrimSpace(req.RoomNumber)
	exists, err := s.rooms.ExistsByNumber(ctx, hotel.ID, roomNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRoomAlreadyExists
	}

	room := &Room{
		ID:            ids.New(ids.PrefixRoom),
		HotelID:       hotel.ID,
		RoomNumber:    roomNumber,
		RoomType:      strings.TrimSpace(req.RoomType),
		PricePerNight: *req.PricePerNight,
		MaxOccupancy:  req.MaxOccupancy,
	}
	// the unique (hotel_id, room_number) index settles concurrent adds
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) ListHotels(ctx context.Context, callerID string, f HotelFilters) ([]HotelSummary, error) {
	if _, err := s.caller(ctx, callerID); err != nil {
		return nil, err
	}
	return s.hotels.List(ctx, f)
}

func (s *Service) GetHotel(ctx context.Context, hotelID string) (*Hotel, error) {
	return s.hotels.GetWithRooms(ctx, hotelID)
}
