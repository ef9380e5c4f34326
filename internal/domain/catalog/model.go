package catalog

import (
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID           string                      `gorm:"primaryKey;size:64"`
	OwnerID      string                      `gorm:"size:64;not null;index"`
	Name         string                      `gorm:"not null"`
	Description  *string
	City         string                      `gorm:"not null;index"`
	Country      string                      `gorm:"not null;index"`
	Amenities    datatypes.JSONSlice[string] `gorm:"not null"`
	Rating       float64                     `gorm:"not null;default:0"`
	TotalReviews int                         `gorm:"not null;default:0"`
	CreatedAt    time.Time

	Rooms []Room `gorm:"foreignKey:HotelID"`
}

func (Hotel) TableName() string { return "hotels" }

type Room struct {
	ID            string  `gorm:"primaryKey;size:64"`
	HotelID       string  `gorm:"size:64;not null;uniqueIndex:idx_rooms_hotel_room_number,priority:1"`
	RoomNumber    string  `gorm:"not null;uniqueIndex:idx_rooms_hotel_room_number,priority:2"`
	RoomType      string  `gorm:"not null"`
	PricePerNight float64 `gorm:"not null"`
	MaxOccupancy  int     `gorm:"not null"`
	CreatedAt     time.Time
}

func (Room) TableName() string { return "rooms" }
