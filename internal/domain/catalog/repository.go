package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotelbooking/internal/database"
)

type HotelFilters struct {
	City      string
	Country   string
	MinRating *float64
	MinPrice  *float64
	MaxPrice  *float64
}

// HotelSummary is a hotel with the cheapest room inside the requested price range.
type HotelSummary struct {
	Hotel
	MinPricePerNight *float64
}

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, hotel *Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*Hotel, error) {
	var hotel Hotel
	err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hotel %s: %w", id, err)
	}
	return &hotel, nil
}

// GetWithRooms fetches a hotel and its rooms ordered by room number.
func (r *HotelRepository) GetWithRooms(ctx context.Context, id string) (*Hotel, error) {
	var hotel Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("room_number ASC") }).
		First(&hotel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hotel %s: %w", id, err)
	}
	return &hotel, nil
}

// List returns hotels matching f. Price bounds only restrict which rooms count
// toward MinPricePerNight; hotels without a matching room are still returned.
func (r *HotelRepository) List(ctx context.Context, f HotelFilters) ([]HotelSummary, error) {
	q := r.db.WithContext(ctx).Model(&Hotel{})
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Country != "" {
		q = q.Where("country = ?", f.Country)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}

	var hotels []Hotel
	if err := q.Order("created_at DESC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if len(hotels) == 0 {
		return []HotelSummary{}, nil
	}

	hotelIDs := make([]string, 0, len(hotels))
	for _, h := range hotels {
		hotelIDs = append(hotelIDs, h.ID)
	}

	type minPriceRow struct {
		HotelID  string
		MinPrice float64
	}
	var rows []minPriceRow
	pq := r.db.WithContext(ctx).
		Model(&Room{}).
		Select("hotel_id, MIN(price_per_night) AS min_price").
		Where("hotel_id IN ?", hotelIDs)
	if f.MinPrice != nil {
		pq = pq.Where("price_per_night >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		pq = pq.Where("price_per_night <= ?", *f.MaxPrice)
	}
	if err := pq.Group("hotel_id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("hotel min prices: %w", err)
	}

	minPrices := make(map[string]float64, len(rows))
	for _, row := range rows {
		minPrices[row.HotelID] = row.MinPrice
	}

	out := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		s := HotelSummary{Hotel: h}
		if p, ok := minPrices[h.ID]; ok {
			s.MinPricePerNight = &p
		}
		out = append(out, s)
	}
	return out, nil
}

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *Room) error {
	err := r.db.WithContext(ctx).Create(room).Error
	if database.IsUniqueViolation(err) {
		return ErrRoomAlreadyExists
	}
	return err
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	var room Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", id, err)
	}
	return &room, nil
}

func (r *RoomRepository) ExistsByNumber(ctx context.Context, hotelID, roomNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Room{}).
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		Count(&count).Error
	return count > 0, err
}
