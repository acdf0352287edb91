package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/pkg/log"
	"github.com/pribylovaa/songs-service/internal/storage"
)

const maxNameLen = 50

// UpdateUserInput — частичное обновление профиля: nil-поле означает «не менять».
type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserByUsername возвращает профиль по username.
func (s *Service) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "service/users/UserByUsername"

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// ListUsers возвращает все учётные записи.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "service/users/ListUsers"

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// UpdateUser применяет частичное обновление профиля.
// Менять можно только собственный профиль (actor == username).
func (s *Service) UpdateUser(ctx context.Context, actor, username string, in UpdateUserInput) (*models.User, error) {
	const op = "service/users/UpdateUser"

	if actor != username {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.Email != nil {
		normEmail, err := validateEmail(*in.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: email: %w", op, err)
		}
		user.Email = normEmail
	}

	if in.FirstName != nil {
		name := strings.TrimSpace(*in.FirstName)
		if len(name) > maxNameLen {
			return nil, fmt.Errorf("%s: first_name: %w", op, ErrInvalidArgument)
		}
		user.FirstName = name
	}

	if in.LastName != nil {
		name := strings.TrimSpace(*in.LastName)
		if len(name) > maxNameLen {
			return nil, fmt.Errorf("%s: last_name: %w", op, ErrInvalidArgument)
		}
		user.LastName = name
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return user, nil
}

// DeleteUser удаляет собственную учётную запись вместе с коллекцией песен.
func (s *Service) DeleteUser(ctx context.Context, actor, username string) error {
	const op = "service/users/DeleteUser"

	lg := log.From(ctx)

	if actor != username {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.DeleteUser(ctx, username); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteSongsByOwner(ctx, username); err != nil {
		// Аккаунт уже удалён; осиротевшие песни недоступны (все выборки
		// фильтруются по owner), фиксируем для ручной зачистки.
		lg.Error("orphan_songs_cleanup_failed",
			slog.String("op", op),
			slog.String("owner", username),
			slog.String("err", err.Error()),
		)
	}

	return nil
}

// SetUserActive включает/выключает собственную учётную запись.
// Деактивация — мягкая блокировка: логин и refresh перестают работать.
func (s *Service) SetUserActive(ctx context.Context, actor, username string, active bool) (*models.User, error) {
	const op = "service/users/SetUserActive"

	if actor != username {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.IsActive == active {
		return user, nil
	}

	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
