package notification

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"hotelbooking/internal/domain/auth"
	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/response"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
}

type Handler struct {
	hub      *Hub
	tokens   TokenValidator
	users    UserReader
	upgrader websocket.Upgrader
}

// NewHandler accepts browser origins from allowedOrigins plus non-browser clients.
func NewHandler(hub *Hub, tokens TokenValidator, users UserReader, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Handler{
		hub:    hub,
		tokens: tokens,
		users:  users,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

// OwnerFeed
// @Summary		Owner booking feed
// @Description	WebSocket stream of booking.created and booking.cancelled events for the owner's hotels.
// @Description	Browsers pass the token as ?token=, other clients may use the Authorization header.
// @Tags		Notifications
// @Param		token	query	string	false	"JWT"
// @Success		101
// @Failure		401	{object}	response.Envelope
// @Failure		403	{object}	response.Envelope
// @Router		/ws/owner [get]
func (h *Handler) OwnerFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if scheme, rest, ok := strings.Cut(c.GetHeader("Authorization"), " "); ok && scheme == "Bearer" {
			token = strings.TrimSpace(rest)
		}
	}
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED")
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidToken) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}
	if !user.IsOwner() {
		response.Error(c, http.StatusForbidden, "FORBIDDEN")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("websocket upgrade failed")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("owner feed connected")
	h.hub.Serve(conn, user.ID)
	log.Info().Str("user_id", user.ID).Msg("owner feed disconnected")
}
