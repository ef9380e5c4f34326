package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/app"
	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain/auth"
	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/domain/catalog"
	"hotelbooking/internal/domain/review"
	"hotelbooking/internal/observability"
)

const demoPassword = "demo-password"

// Fixed ids keep the seed idempotent.
const (
	ownerID    = "usr_demo_owner"
	customerID = "usr_demo_customer"
	hotelID    = "hotel_demo_seaside"
	pastStayID = "booking_demo_past"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}

	ctx := context.Background()
	if err := app.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	if err := seed(ctx, db, auth.NewPasswordHasher(cfg.BcryptCost)); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().
		Str("owner", "owner@demo.hotel").
		Str("customer", "guest@demo.hotel").
		Str("password", demoPassword).
		Msg("seed completed")
}

func seed(ctx context.Context, db *gorm.DB, hasher *auth.PasswordHasher) error {
	hash, err := hasher.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	insert := func(v any) error {
		return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(v).Error
	}

	log.Info().Msg("creating users")
	users := []auth.User{
		{ID: ownerID, Name: "Demo Owner", Email: "owner@demo.hotel", Password: hash, Role: auth.RoleOwner, Phone: "+1 555 0101"},
		{ID: customerID, Name: "Demo Guest", Email: "guest@demo.hotel", Password: hash, Role: auth.RoleCustomer, Phone: "+1 555 0102"},
	}
	if err := insert(&users); err != nil {
		return err
	}

	log.Info().Msg("creating hotel and rooms")
	desc := "Sea-view rooms a short walk from the old town."
	hotel := catalog.Hotel{
		ID:          hotelID,
		OwnerID:     ownerID,
		Name:        "Seaside Demo Hotel",
		Description: &desc,
		City:        "Nice",
		Country:     "FR",
		Amenities:   datatypes.JSONSlice[string]{"wifi", "breakfast", "parking"},
	}
	if err := insert(&hotel); err != nil {
		return err
	}

	rooms := []catalog.Room{
		{ID: "room_demo_101", HotelID: hotelID, RoomNumber: "101", RoomType: "single", PricePerNight: 89, MaxOccupancy: 1},
		{ID: "room_demo_102", HotelID: hotelID, RoomNumber: "102", RoomType: "double", PricePerNight: 129, MaxOccupancy: 2},
		{ID: "room_demo_201", HotelID: hotelID, RoomNumber: "201", RoomType: "suite", PricePerNight: 249, MaxOccupancy: 4},
	}
	if err := insert(&rooms); err != nil {
		return err
	}

	log.Info().Msg("creating completed stay and review")
	checkOut := booking.StartOfDay(time.Now()).AddDate(0, 0, -3)
	checkIn := checkOut.AddDate(0, 0, -2)
	stay := booking.BookingModel{
		ID:           pastStayID,
		RoomID:       "room_demo_102",
		UserID:       customerID,
		HotelID:      hotelID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Guests:       2,
		TotalPrice:   booking.TotalPrice(booking.Nights(checkIn, checkOut), 129),
		Status:       string(booking.StatusConfirmed),
		BookingDate:  checkIn.AddDate(0, 0, -14),
	}
	if err := insert(&stay); err != nil {
		return err
	}

	err = review.NewReviewRepository(db).CreateAndRate(ctx, &review.Review{
		ID:        "review_demo_1",
		UserID:    customerID,
		HotelID:   hotelID,
		BookingID: pastStayID,
		Rating:    5,
		Comment:   "Great view, friendly staff.",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, review.ErrAlreadyReviewed) {
		return err
	}
	return nil
}
