// Package storage задаёт контракт работы с БД и сентинельные ошибки слоя хранения.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/songs-service/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/песня).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email).
	ErrAlreadyExists = errors.New("already exists")
	// ErrVersionConflict — условное обновление версии refresh-токена не нашло
	// запись с ожидаемой версией: токен уже ротирован конкурентным запросом
	// либо отозван.
	ErrVersionConflict = errors.New("token version conflict")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// CreateUser создаёт нового пользователя; ErrAlreadyExists при дубле username/email.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// UserByUsername находит пользователя по username.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UserByEmail находит пользователя по email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateUser сохраняет изменяемые поля записи целиком (по ID).
	UpdateUser(ctx context.Context, user *models.User) error
	// DeleteUser удаляет пользователя по username.
	DeleteUser(ctx context.Context, username string) error
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]models.User, error)
	// BumpTokenVersion атомарно инкрементирует версию refresh-токена
	// при условии, что текущая версия равна expected
	// (update ... where username=? and token_version=expected).
	// Возвращает новую версию; если запись с ожидаемой версией не найдена —
	// ErrVersionConflict.
	BumpTokenVersion(ctx context.Context, username string, expected int64) (int64, error)
}

// SongStorage выполняет операции над песнями. Все операции по id
// дополнительно фильтруются по владельцу — чужая запись неотличима
// от несуществующей (ErrNotFound).
type SongStorage interface {
	// CreateSong создаёт песню и возвращает её с проставленным ID.
	CreateSong(ctx context.Context, song models.Song) (*models.Song, error)
	// SongByID возвращает песню по паре (id, owner).
	SongByID(ctx context.Context, id, owner string) (*models.Song, error)
	// SongsByOwner возвращает коллекцию одного владельца (новые сверху).
	SongsByOwner(ctx context.Context, owner string) ([]models.Song, error)
	// SearchSongs ищет по подстроке в title/artist внутри коллекции владельца
	// (без учёта регистра).
	SearchSongs(ctx context.Context, owner, query string) ([]models.Song, error)
	// UpdateSong сохраняет изменяемые поля по паре (ID, Owner).
	UpdateSong(ctx context.Context, song *models.Song) error
	// DeleteSong удаляет песню по паре (id, owner).
	DeleteSong(ctx context.Context, id, owner string) error
	// DeleteSongsByOwner удаляет всю коллекцию владельца (при удалении аккаунта).
	DeleteSongsByOwner(ctx context.Context, owner string) error
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	SongStorage
	Close(ctx context.Context) error
}
