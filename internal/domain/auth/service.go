package auth

import (
	"context"
	"errors"
	"strings"

	"hotelbooking/internal/pkg/ids"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type jwtService interface {
	GenerateToken(userID string) (string, error)
}

type passwordHasher interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) bool
}

// Service contains all business logic for authentication
type Service struct {
	users  UserRepositoryInterface
	jwt    jwtService
	hasher passwordHasher
}

type LoginResult struct {
	User  *User
	Token string
}

func NewService(users UserRepositoryInterface, jwt jwtService, hasher passwordHasher) *Service {
	return &Service{users: users, jwt: jwt, hasher: hasher}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = RoleCustomer
	}

	user := &User{
		ID:       ids.New(ids.PrefixUser),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     role,
		Phone:    strings.TrimSpace(req.Phone),
	}
	// Create maps a lost race on users.email to ErrEmailAlreadyExists.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
