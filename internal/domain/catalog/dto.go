package catalog

import (
	"strconv"
	"time"
)

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Amenities   []string `json:"amenities" binding:"required"`
}

type CreateRoomRequest struct {
	RoomNumber    string   `json:"roomNumber" binding:"required"`
	RoomType      string   `json:"roomType" binding:"required"`
	PricePerNight *float64 `json:"pricePerNight" binding:"required,gte=0"`
	MaxOccupancy  int      `json:"maxOccupancy" binding:"required,min=1"`
}

// ListHotelsQuery holds raw query parameters; numeric fields are checked
// before conversion so "abc" is rejected rather than ignored.
type ListHotelsQuery struct {
	City      string `form:"city"`
	Country   string `form:"country"`
	MinRating string `form:"minRating" validate:"omitempty,numeric"`
	MinPrice  string `form:"minPrice" validate:"omitempty,numeric"`
	MaxPrice  string `form:"maxPrice" validate:"omitempty,numeric"`
}

func (q ListHotelsQuery) Filters() (HotelFilters, error) {
	f := HotelFilters{City: q.City, Country: q.Country}
	var err error
	if f.MinRating, err = optionalFloat(q.MinRating); err != nil {
		return f, err
	}
	if f.MinPrice, err = optionalFloat(q.MinPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalFloat(q.MaxPrice); err != nil {
		return f, err
	}
	return f, nil
}

func optionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type HotelResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Amenities    []string  `json:"amenities"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"totalReviews"`
	CreatedAt    time.Time `json:"createdAt"`
}

type HotelSummaryResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      *string  `json:"description"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	Amenities        []string `json:"amenities"`
	Rating           float64  `json:"rating"`
	TotalReviews     int      `json:"totalReviews"`
	MinPricePerNight *float64 `json:"minPricePerNight"`
}

type HotelDetailResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"rooms"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	HotelID       string  `json:"hotelId"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxOccupancy  int     `json:"maxOccupancy"`
}

func amenitiesOf(h *Hotel) []string {
	if h.Amenities == nil {
		return []string{}
	}
	return []string(h.Amenities)
}

func ToHotelResponse(h *Hotel) HotelResponse {
	return HotelResponse{
		ID:           h.ID,
		OwnerID:      h.OwnerID,
		Name:         h.Name,
		Description:  h.Description,
		City:         h.City,
		Country:      h.Country,
		Amenities:    amenitiesOf(h),
		Rating:       h.Rating,
		TotalReviews: h.TotalReviews,
		CreatedAt:    h.CreatedAt,
	}
}

func ToHotelSummaryResponse(s *HotelSummary) HotelSummaryResponse {
	return HotelSummaryResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		City:             s.City,
		Country:          s.Country,
		Amenities:        amenitiesOf(&s.Hotel),
		Rating:           s.Rating,
		TotalReviews:     s.TotalReviews,
		MinPricePerNight: s.MinPricePerNight,
	}
}

func ToHotelDetailResponse(h *Hotel) HotelDetailResponse {
	rooms := make([]RoomResponse, 0, len(h.Rooms))
	for i := range h.Rooms {
		rooms = append(rooms, ToRoomResponse(&h.Rooms[i]))
	}
	return HotelDetailResponse{HotelResponse: ToHotelResponse(h), Rooms: rooms}
}

func ToRoomResponse(r *Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
		MaxOccupancy:  r.MaxOccupancy,
	}
}
