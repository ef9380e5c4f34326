package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/jwt"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:auth_handler_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db, &User{}))

	repo := NewUserRepository(db)
	tokens := jwt.New("test-secret", time.Hour)
	h := NewHandler(NewService(repo, tokens, NewPasswordHasher(bcrypt.MinCost)))

	r := gin.New()
	api := r.Group("/api")
	h.RegisterPublicRoutes(api)
	h.RegisterProtectedRoutes(api.Group("", middleware.JWTAuth(tokens)))
	return r, repo
}

func doJSONRequest(r http.Handler, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var env envelope
	_ = json.Unmarshal(rr.Body.Bytes(), &env)
	return rr, env
}

func TestSignupLoginMe_FullFlow(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr, env := doJSONRequest(r, http.MethodPost, "/api/auth/signup", map[string]any{
		"name": "Olivia", "email": "Olivia@Example.com", "password": "pw-123", "role": "owner", "phone": "555",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.NotContains(t, rr.Body.String(), "password")

	var created UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "olivia@example.com", created.Email)
	assert.Equal(t, RoleOwner, created.Role)

	rr, env = doJSONRequest(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "olivia@example.com", "password": "pw-123",
	}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var login LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, created.ID, login.User.ID)

	rr, env = doJSONRequest(r, http.MethodGet, "/api/users/me", nil, login.Token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var me UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, created.ID, me.ID)
}

func TestSignup_DuplicateEmailKeepsSingleRow(t *testing.T) {
	r, repo := setupTestRouter(t)
	body := map[string]any{"name": "A", "email": "dup@example.com", "password": "pw", "phone": "1"}

	rr, _ := doJSONRequest(r, http.MethodPost, "/api/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr, env := doJSONRequest(r, http.MethodPost, "/api/auth/signup", body, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", *env.Error)

	var count int64
	require.NoError(t, repo.db.Model(&User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignup_InvalidRequest(t *testing.T) {
	r, _ := setupTestRouter(t)

	cases := []map[string]any{
		{"email": "a@example.com", "password": "pw", "phone": "1"},
		{"name": "A", "email": "not-an-email", "password": "pw", "phone": "1"},
		{"name": "A", "email": "a@example.com", "password": "pw", "phone": "1", "role": "admin"},
	}
	for _, body := range cases {
		rr, env := doJSONRequest(r, http.MethodPost, "/api/auth/signup", body, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REQUEST", *env.Error)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := setupTestRouter(t)
	rr, _ := doJSONRequest(r, http.MethodPost, "/api/auth/signup", map[string]any{
		"name": "A", "email": "a@example.com", "password": "right", "phone": "1",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr, env := doJSONRequest(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "a@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", *env.Error)
	assert.Equal(t, "null", string(env.Data))
}

func TestMe_RequiresToken(t *testing.T) {
	r, _ := setupTestRouter(t)
	rr, _ := doJSONRequest(r, http.MethodGet, "/api/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSignup_PasswordOverBcryptLimit(t *testing.T) {
	r, repo := setupTestRouter(t)

	rr, env := doJSONRequest(r, http.MethodPost, "/api/auth/signup", map[string]any{
		"name": "Long", "email": "long@example.com", "password": strings.Repeat("p", 80), "phone": "1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", *env.Error)

	var count int64
	require.NoError(t, repo.db.Model(&User{}).Count(&count).Error)
	assert.Zero(t, count)

	// exactly at the limit is fine
	rr, _ = doJSONRequest(r, http.MethodPost, "/api/auth/signup", map[string]any{
		"name": "Edge", "email": "edge@example.com", "password": strings.Repeat("p", 72), "phone": "1",
	}, "")
	assert.Equal(t, http.StatusCreated, rr.Code)
}
