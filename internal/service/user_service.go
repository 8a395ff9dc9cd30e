package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "handpay/internal/errors"
	"handpay/internal/model"
	"handpay/internal/repository"
)

// RegisterInput carries the enrollment data submitted by a client.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Address   string
	Card      string
	Signature []float64
}

// UserService exposes account operations.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, identifier, password string) (*model.User, error)
	Profile(ctx context.Context, name string) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *slog.Logger
}

// NewUserService builds a UserService on top of the user repository.
func NewUserService(repo repository.UserRepository, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{repo: repo, logger: logger}
}

// Register stores a new user. Only the last four card characters are kept.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	user := &model.User{
		Name:               in.Name,
		Email:              in.Email,
		Password:           in.Password,
		Address:            in.Address,
		CardLast4:          Last4(in.Card),
		BiometricSignature: model.Signature(in.Signature),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateName) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user", user.Name, "samples", len(in.Signature))
	return user, nil
}

// Login authenticates by name or email with an exact password match.
func (s *userService) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	user, err := s.repo.FindByCredential(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by credential: %w", err)
	}
	return user, nil
}

func (s *userService) Profile(ctx context.Context, name string) (*model.User, error) {
	user, err := s.repo.FindProfile(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return user, nil
}
