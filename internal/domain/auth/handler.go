package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Signup registers a new account.
// @Summary		Sign up
// @Description	Creates a customer or owner account. Email is unique and stored lower-cased.
// @Tags		Auth
// @Accept		json
// @Produce		json
// @Param		body	body	SignupRequest	true	"payload"
// @Success		201	{object}	UserResponse
// @Failure		400	{object}	response.Envelope	"INVALID_REQUEST or EMAIL_ALREADY_EXISTS"
// @Router		/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ToUserResponse(user))
}

// Login exchanges credentials for a bearer token.
// @Summary		Log in
// @Tags		Auth
// @Accept		json
// @Produce		json
// @Param		body	body	LoginRequest	true	"payload"
// @Success		200	{object}	LoginResponse
// @Failure		400	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope	"INVALID_CREDENTIALS"
// @Router		/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  ToUserResponse(result.User),
	})
}

// GetMe returns the authenticated user.
// @Summary		Current user
// @Tags		Users
// @Security	BearerAuth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	response.Envelope
// @Router		/users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.service.GetCurrentUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToUserResponse(user))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		response.Error(c, http.StatusBadRequest, "EMAIL_ALREADY_EXISTS")
	case errors.Is(err, ErrPasswordTooLong):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
	}
}
