package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/pkg/log"
	"github.com/pribylovaa/songs-service/internal/storage"
)

// RegisterInput — данные регистрации нового пользователя.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register регистрирует нового пользователя с нулевой версией refresh-токена.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "service/auth/Register"

	username, err := validateUsername(in.Username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	normEmail, err := validateEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.UserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.UserByEmail(ctx, normEmail); err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		Username:     username,
		Email:        normEmail,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		TokenVersion: 0,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.storage.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Гонка с параллельной регистрацией после пройденных проверок.
			return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// Login выполняет вход по username или email + пароль.
// Не найден / неактивен / пароль не подошёл — одна и та же ошибка
// ErrInvalidCredentials, без деталей.
func (s *Service) Login(ctx context.Context, identity, password string) (*models.TokenPair, *models.User, error) {
	const op = "service/auth/Login"

	lg := log.From(ctx)

	identity = strings.TrimSpace(identity)
	if identity == "" || password == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByUsername(ctx, identity)
	if errors.Is(err, storage.ErrNotFound) {
		user, err = s.storage.UserByEmail(ctx, strings.ToLower(identity))
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !user.IsActive || !checkPassword(user.PasswordHash, password) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(user.Username, user.ID, user.TokenVersion)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	user.LastLogin = time.Now().UTC()
	if err := s.storage.UpdateUser(ctx, user); err != nil {
		// Потеря last_login не должна ломать вход.
		lg.Warn("last_login_update_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	return pair, user, nil
}

// Refresh проверяет refresh-токен и ротирует пару токенов.
//
// Порядок строго bump-then-mint: сначала условный инкремент версии в БД,
// затем выпуск новой пары с новой версией. Если ответ потеряется после
// записи, старый токен уже мёртв — клиент уходит на повторный логин,
// а не получает возможность повторного использования.
//
// Любое несовпадение версии (в том числе версия «из будущего» после
// частичной записи) трактуется как отзыв: восстановление линии по слову
// клиента ослабляло бы гарантию ротации.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service/auth/Refresh"

	lg := log.From(ctx)

	cl, err := s.codec.Decode(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cl.Type != TokenTypeRefresh {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	user, err := s.storage.UserByUsername(ctx, cl.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	if cl.Version != user.TokenVersion {
		lg.Warn("refresh_version_mismatch",
			slog.String("op", op),
			slog.String("user", user.Username),
			slog.Int64("token_version", cl.Version),
			slog.Int64("stored_version", user.TokenVersion),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	newVersion, err := s.storage.BumpTokenVersion(ctx, user.Username, cl.Version)
	if err != nil {
		if errors.Is(err, storage.ErrVersionConflict) {
			// Конкурентный refresh тем же токеном успел первым.
			return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(user.Username, user.ID, newVersion)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// CurrentUser возвращает учётную запись по username.
func (s *Service) CurrentUser(ctx context.Context, username string) (*models.User, error) {
	const op = "service/auth/CurrentUser"

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// Logout — подтверждение выхода. Состояния access-токенов на сервере нет,
// отзыв обеспечивается только ротацией refresh-токенов, поэтому операция
// ничего не мутирует.
func (s *Service) Logout(ctx context.Context) error {
	return nil
}

// issueTokenPair выпускает пару access+refresh с заданной версией refresh-линии.
func (s *Service) issueTokenPair(username, userID string, version int64) (*models.TokenPair, error) {
	const op = "service/auth/issueTokenPair"

	access, err := s.codec.Encode(Claims{
		Subject: username,
		UserID:  userID,
	}, s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := s.codec.Encode(Claims{
		Subject: username,
		UserID:  userID,
		Type:    TokenTypeRefresh,
		Version: version,
	}, s.cfg.Auth.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     access,
		RefreshToken:    refresh,
		AccessExpiresAt: time.Now().UTC().Add(s.cfg.Auth.AccessTokenTTL),
	}, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service/auth/hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateUsername: 3..32 символа, без пробелов внутри.
func validateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if len(username) < 3 || len(username) > 32 || strings.ContainsAny(username, " \t") {
		return "", ErrInvalidArgument
	}

	return username, nil
}

// validateEmail проверяет базовый формат email и нормализует регистр.
func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrInvalidArgument
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidArgument
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика: длина >= 8, хотя бы одна строчная, заглавная и цифра.
func validatePassword(pw string) error {
	if len([]rune(pw)) < 8 {
		return ErrInvalidArgument
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !(hasLower && hasUpper && hasDigit) {
		return ErrInvalidArgument
	}

	return nil
}
