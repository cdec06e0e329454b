package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/store"
	"github.com/aussiebroadwan/projecthub/pkg/cryptox"
	"github.com/aussiebroadwan/projecthub/pkg/idx"
	"github.com/aussiebroadwan/projecthub/pkg/jwtx"
	"github.com/aussiebroadwan/projecthub/pkg/slogx"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrNameRequired       = errors.New("name is required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Session is a freshly issued login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
	Now      func() time.Time
}

// Register creates an account and logs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	name = strings.TrimSpace(name)
	if name == "" {
		return Session{}, ErrNameRequired
	}
	email, err := NormalizeEmail(email)
	if err != nil {
		return Session{}, err
	}
	if len(password) < MinPasswordLength {
		return Session{}, ErrWeakPassword
	}

	// 2. Hash the password using Argon2id
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Session{}, err
	}

	// 3. Insert; the unique email index decides races
	now := clock(s.Now)
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration attempted with taken email", slog.String("email", email))
			return Session{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return s.issue(user, now)
}

// Login checks the credentials. Unknown emails and wrong passwords both
// return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted for unknown email")
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login attempted with wrong password", slog.String("user_id", user.ID))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.String("user_id", user.ID), slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return s.issue(user, clock(s.Now))
}

// Me returns the caller's profile.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) issue(user domain.User, now time.Time) (Session, error) {
	claims := jwtx.NewSessionClaims(user.ID, user.Email, user.Name, s.Issuer, s.TokenTTL, now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: user}, nil
}
