package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/response"
)

const userIDKey = "user_id"

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// JWTAuth resolves "Authorization: Bearer <token>" into the caller's user id.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || strings.TrimSpace(token) == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, jwt.ErrInvalidToken) {
				response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED")
				return
			}
			log.Error().Err(err).Str("request_id", requestID(c)).Msg("token verification failed")
			response.Abort(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

type UserChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// RequireUser rejects callers whose account no longer exists. Mount it after JWTAuth.
func RequireUser(users UserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := users.ExistsByID(c.Request.Context(), UserID(c))
		if err != nil {
			log.Error().Err(err).Str("request_id", requestID(c)).Msg("caller lookup failed")
			response.Abort(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
			return
		}
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller set by JWTAuth, or "".
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
