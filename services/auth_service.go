package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/auth"
	"github.com/diegoperpetuo/perpetual-backend/models"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	users  UserStore
	hasher *auth.Hasher
	tokens *auth.TokenManager
}

func NewAuthService(users UserStore, hasher *auth.Hasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates an account. It does not issue a token; the caller must log
// in separately.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return "", apperrors.Validation("missing required fields: " + strings.Join(missing, ", "))
	}

	if err := validateCredentials(req.Email, req.Password); err != nil {
		return "", err
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", apperrors.Infrastructure("looking up account", err)
	}
	if existing != nil {
		return "", apperrors.Conflict("email already registered")
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", apperrors.Infrastructure("hashing password", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: digest,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", apperrors.Infrastructure("creating account", err)
	}

	return "user registered successfully", nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same message so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", apperrors.Validation("email and password are required")
	}
	if err := validateCredentials(req.Email, req.Password); err != nil {
		return "", err
	}

	user, err := s.users.FindByEmailWithPassword(ctx, req.Email)
	if err != nil {
		return "", apperrors.Infrastructure("looking up account", err)
	}
	if user == nil {
		return "", apperrors.Authentication("invalid credentials")
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return "", apperrors.Authentication("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", apperrors.Infrastructure("issuing token", err)
	}
	return token, nil
}

func validateCredentials(email, password string) error {
	if !emailRegexp.MatchString(email) {
		return apperrors.Validation("invalid email")
	}
	if len(strings.TrimSpace(password)) < 6 {
		return apperrors.Validation("invalid password")
	}
	return nil
}
