package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/crypto"
	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
	"github.com/Hafiizherdian/mini-e-commerce/internal/repository"
	"github.com/Hafiizherdian/mini-e-commerce/internal/token"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both "unknown user" and "wrong
	// password". Login must never reveal which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Register(username, password, email string) (*models.User, error)
	Login(username, password string) (string, error)
}

type authService struct {
	repo      repository.UserRepository
	codec     *token.Codec
	accessTTL time.Duration
	logger    *zap.Logger
}

// NewAuthService wires the credential store and the token codec.
// accessTTL is the lifetime of tokens minted at login; it overrides
// the codec's default.
func NewAuthService(repo repository.UserRepository, codec *token.Codec, accessTTL time.Duration, logger *zap.Logger) AuthService {
	return &authService{
		repo:      repo,
		codec:     codec,
		accessTTL: accessTTL,
		logger:    logger,
	}
}

// Register creates a new identity with the default role set. Any
// non-empty username works; password policy and email validation are
// deliberately absent in this MVP.
func (s *authService) Register(username, password, email string) (*models.User, error) {
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Roles:        append([]string(nil), models.DefaultRoles...),
		Email:        email,
	}

	if err := s.repo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("username", username))
	return user, nil
}

// Login verifies the credentials and mints an access token carrying
// the user's roles.
func (s *authService) Login(username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	tokenString, err := s.codec.IssueWithTTL(user.Username, user.Roles, s.accessTTL)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("username", user.Username))
	return tokenString, nil
}
