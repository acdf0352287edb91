package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/storage"
)

const (
	maxTitleLen  = 200
	maxArtistLen = 200
	maxGenreLen  = 50
	minSongYear  = 1000
)

// AddSongInput — данные новой песни. Owner проставляется из identity запроса.
type AddSongInput struct {
	Title  string
	Artist string
	Owner  string
	Genre  string
	Year   int
}

// UpdateSongInput — частичное обновление песни: nil-поле означает «не менять».
// Фиксированный список полей делает merge проверяемым компилятором вместо
// словаря «что пришло, то и записали».
type UpdateSongInput struct {
	Title  *string
	Artist *string
	Genre  *string
	Year   *int
}

// AddSong валидирует и создаёт песню в коллекции владельца.
func (s *Service) AddSong(ctx context.Context, in AddSongInput) (*models.Song, error) {
	const op = "service/songs/AddSong"

	title, err := validateSongField(in.Title, maxTitleLen)
	if err != nil {
		return nil, fmt.Errorf("%s: title: %w", op, err)
	}

	artist, err := validateSongField(in.Artist, maxArtistLen)
	if err != nil {
		return nil, fmt.Errorf("%s: artist: %w", op, err)
	}

	genre := strings.TrimSpace(in.Genre)
	if len(genre) > maxGenreLen {
		return nil, fmt.Errorf("%s: genre: %w", op, ErrInvalidArgument)
	}

	if err := validateYear(in.Year); err != nil {
		return nil, fmt.Errorf("%s: year: %w", op, err)
	}

	song := models.Song{
		Title:  title,
		Artist: artist,
		Owner:  in.Owner,
		Genre:  genre,
		Year:   in.Year,
	}

	created, err := s.storage.CreateSong(ctx, song)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// SongByID возвращает песню владельца; чужая запись неотличима от отсутствующей.
func (s *Service) SongByID(ctx context.Context, id, owner string) (*models.Song, error) {
	const op = "service/songs/SongByID"

	song, err := s.storage.SongByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return song, nil
}

// ListSongs возвращает коллекцию владельца.
func (s *Service) ListSongs(ctx context.Context, owner string) ([]models.Song, error) {
	const op = "service/songs/ListSongs"

	songs, err := s.storage.SongsByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return songs, nil
}

// SearchSongs ищет по подстроке в title/artist внутри коллекции владельца.
// Запрос после обрезки пробелов должен быть не короче 2 символов.
func (s *Service) SearchSongs(ctx context.Context, owner, query string) ([]models.Song, error) {
	const op = "service/songs/SearchSongs"

	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return nil, fmt.Errorf("%s: query: %w", op, ErrInvalidArgument)
	}

	songs, err := s.storage.SearchSongs(ctx, owner, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return songs, nil
}

// UpdateSong применяет частичное обновление к песне владельца.
func (s *Service) UpdateSong(ctx context.Context, id, owner string, in UpdateSongInput) (*models.Song, error) {
	const op = "service/songs/UpdateSong"

	song, err := s.storage.SongByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.Title != nil {
		title, err := validateSongField(*in.Title, maxTitleLen)
		if err != nil {
			return nil, fmt.Errorf("%s: title: %w", op, err)
		}
		song.Title = title
	}

	if in.Artist != nil {
		artist, err := validateSongField(*in.Artist, maxArtistLen)
		if err != nil {
			return nil, fmt.Errorf("%s: artist: %w", op, err)
		}
		song.Artist = artist
	}

	if in.Genre != nil {
		genre := strings.TrimSpace(*in.Genre)
		if len(genre) > maxGenreLen {
			return nil, fmt.Errorf("%s: genre: %w", op, ErrInvalidArgument)
		}
		song.Genre = genre
	}

	if in.Year != nil {
		if err := validateYear(*in.Year); err != nil {
			return nil, fmt.Errorf("%s: year: %w", op, err)
		}
		song.Year = *in.Year
	}

	if err := s.storage.UpdateSong(ctx, song); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	song.UpdatedAt = time.Now().UTC()
	return song, nil
}

// DeleteSong удаляет песню владельца.
func (s *Service) DeleteSong(ctx context.Context, id, owner string) error {
	const op = "service/songs/DeleteSong"

	if err := s.storage.DeleteSong(ctx, id, owner); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserStats собирает статистику коллекции пользователя: всего песен
// и распределение по жанрам/годам/исполнителям.
func (s *Service) UserStats(ctx context.Context, username string) (*models.SongStats, error) {
	const op = "service/songs/UserStats"

	if _, err := s.storage.UserByUsername(ctx, username); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	songs, err := s.storage.SongsByOwner(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := &models.SongStats{
		TotalSongs: len(songs),
		Genres:     make(map[string]int),
		Years:      make(map[int]int),
		Artists:    make(map[string]int),
	}

	for _, song := range songs {
		if song.Genre != "" {
			stats.Genres[song.Genre]++
		}
		if song.Year != 0 {
			stats.Years[song.Year]++
		}
		stats.Artists[song.Artist]++
	}

	return stats, nil
}

// validateSongField: непустая строка после обрезки пробелов, не длиннее max.
func validateSongField(raw string, max int) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" || len(v) > max {
		return "", ErrInvalidArgument
	}

	return v, nil
}

// validateYear: 0 (не указан) либо minSongYear..текущий календарный год.
func validateYear(year int) error {
	if year == 0 {
		return nil
	}

	if year < minSongYear || year > time.Now().Year() {
		return ErrInvalidArgument
	}

	return nil
}
