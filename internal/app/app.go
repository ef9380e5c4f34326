package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain/auth"
	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/domain/catalog"
	"hotelbooking/internal/domain/notification"
	"hotelbooking/internal/domain/review"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/response"
)

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{
		&auth.User{},
		&catalog.Hotel{},
		&catalog.Room{},
		&booking.BookingModel{},
		&review.Review{},
	}
}

// Migrate brings the schema up to date, including store-level booking constraints.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return database.Migrate(ctx, db, Models()...)
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	tokens := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := auth.NewUserRepository(db)
	hotelRepo := catalog.NewHotelRepository(db)
	roomRepo := catalog.NewRoomRepository(db)
	bookingRepo := booking.NewBookingRepository(db)
	reviewRepo := review.NewReviewRepository(db)

	hub := notification.NewHub()

	authHandler := auth.NewHandler(auth.NewService(userRepo, tokens, auth.NewPasswordHasher(cfg.BcryptCost)))
	catalogHandler := catalog.NewHandler(catalog.NewService(userRepo, hotelRepo, roomRepo))
	bookingHandler := booking.NewHandler(booking.NewService(userRepo, roomRepo, hotelRepo, bookingRepo, hub))
	reviewHandler := review.NewHandler(review.NewService(userRepo, bookingRepo, hotelRepo, reviewRepo))
	feedHandler := notification.NewHandler(hub, tokens, userRepo, cfg.CORSAllowedOrigins)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/healthz", healthz(db))

	api := r.Group("/api")
	{
		authLimiter := middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
		authHandler.RegisterPublicRoutes(api, authLimiter.Middleware())

		// browsers cannot set headers on a websocket handshake, so the feed authenticates itself
		feedHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(tokens))
		{
			requireUser := middleware.RequireUser(userRepo)

			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected, requireUser)
			reviewHandler.RegisterRoutes(protected, requireUser)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND")
	})

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
