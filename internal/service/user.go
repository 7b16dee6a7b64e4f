package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/stockboard-api/internal/domain"
	"github.com/vietanh2810/stockboard-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetActiveUser resolves a token subject to a user that may still log in.
func (s *UserService) GetActiveUser(ctx context.Context, username string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if user.Disabled {
		return domain.User{}, ErrUserDisabled
	}

	return user, nil
}

// Seed writes the configured credentials to the store.
func (s *UserService) Seed(ctx context.Context, users []domain.User) error {
	for _, u := range users {
		if _, err := s.repo.Save(ctx, u); err != nil {
			return fmt.Errorf("s.repo.Save(%s) -> %w", u.Username, err)
		}

		zap.L().Debug("seeded credential", zap.String("username", u.Username), zap.Bool("disabled", u.Disabled))
	}

	return nil
}
