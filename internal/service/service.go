// service содержит бизнес-логику songs-сервиса:
// регистрацию/аутентификацию пользователей, выпуск/ротацию токенов,
// CRUD песен с изоляцией по владельцу и работу с хранилищем через
// интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются сентинелами и далее маппятся HTTP-слоем на статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/songs-service/internal/config"
	"github.com/pribylovaa/songs-service/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна, пользователь не найден
	// или аккаунт деактивирован. Сообщение едино для всех трёх случаев,
	// чтобы исключить перебор учёток. HTTP 401.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken — токен некорректен по формату/подписи или имеет
	// неожиданный тип (access вместо refresh). HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — версия refresh-токена не совпадает с текущей:
	// токен из устаревшей линии выпуска (повтор после ротации или replay
	// украденного токена). HTTP 401.
	ErrTokenRevoked = errors.New("refresh token has been revoked")

	// ErrUsernameTaken — username уже занят. HTTP 409.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrEmailTaken — e-mail уже занят. HTTP 409.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound — пользователь/песня не найдены, либо песня принадлежит
	// другому владельцу (эти случаи намеренно неотличимы). HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied — аутентифицированный пользователь пытается изменить
	// чужой профиль/аккаунт. HTTP 403.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidArgument — входные данные не прошли валидацию
	// (пустой title, год из будущего, слабый пароль и т.п.). HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service описывает бизнес-логику songs-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.Config
	codec   *TokenCodec
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: st,
		cfg:     cfg,
		codec:   NewTokenCodec(cfg.Auth),
	}
}

// Codec возвращает кодек токенов (его использует HTTP-middleware аутентификации).
func (s *Service) Codec() *TokenCodec {
	return s.codec
}
