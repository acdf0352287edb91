package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/storage"
)

func TestAddSong_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().CreateSong(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, song models.Song) (*models.Song, error) {
			require.Equal(t, "Bohemian Rhapsody", song.Title)
			require.Equal(t, "Queen", song.Artist)
			require.Equal(t, "alice", song.Owner)
			out := song
			out.ID = "64b0c8f7a1b2c3d4e5f60718"
			out.CreatedAt = time.Now().UTC()
			return &out, nil
		})

	song, err := svc.AddSong(context.Background(), AddSongInput{
		Title:  "  Bohemian Rhapsody  ",
		Artist: "Queen",
		Owner:  "alice",
		Genre:  "Rock",
		Year:   1975,
	})
	require.NoError(t, err)
	require.Equal(t, "64b0c8f7a1b2c3d4e5f60718", song.ID)
	require.Equal(t, "Bohemian Rhapsody", song.Title)
}

func TestAddSong_Validation(t *testing.T) {
	t.Parallel()

	nextYear := time.Now().Year() + 1

	cases := []struct {
		name string
		in   AddSongInput
	}{
		{"empty_title", AddSongInput{Title: "   ", Artist: "Queen", Owner: "alice"}},
		{"empty_artist", AddSongInput{Title: "Song", Artist: "", Owner: "alice"}},
		{"long_title", AddSongInput{Title: strings.Repeat("x", maxTitleLen+1), Artist: "Queen", Owner: "alice"}},
		{"long_genre", AddSongInput{Title: "Song", Artist: "Queen", Owner: "alice", Genre: strings.Repeat("g", maxGenreLen+1)}},
		{"future_year", AddSongInput{Title: "Song", Artist: "Queen", Owner: "alice", Year: nextYear}},
		{"ancient_year", AddSongInput{Title: "Song", Artist: "Queen", Owner: "alice", Year: 999}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _, ctrl := newSvc(t)
			defer ctrl.Finish()

			_, err := svc.AddSong(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestAddSong_CurrentYearAllowed(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().CreateSong(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, song models.Song) (*models.Song, error) {
			out := song
			out.ID = "64b0c8f7a1b2c3d4e5f60718"
			return &out, nil
		})

	_, err := svc.AddSong(context.Background(), AddSongInput{
		Title:  "Fresh",
		Artist: "Band",
		Owner:  "alice",
		Year:   time.Now().Year(),
	})
	require.NoError(t, err)
}

// Чужая песня по id неотличима от несуществующей.
func TestSongByID_OwnershipIsolation(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SongByID(gomock.Any(), "64b0c8f7a1b2c3d4e5f60718", "bob").Return(nil, storage.ErrNotFound)

	_, err := svc.SongByID(context.Background(), "64b0c8f7a1b2c3d4e5f60718", "bob")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchSongs_QueryTooShort(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"", "a", " я ", "  x  "} {
		q := q
		t.Run("q="+q, func(t *testing.T) {
			t.Parallel()

			svc, _, ctrl := newSvc(t)
			defer ctrl.Finish()

			_, err := svc.SearchSongs(context.Background(), "alice", q)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSearchSongs_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := []models.Song{{ID: "1", Title: "Queen of Hearts", Artist: "Juice Newton", Owner: "alice"}}
	st.EXPECT().SearchSongs(gomock.Any(), "alice", "que").Return(want, nil)

	got, err := svc.SearchSongs(context.Background(), "alice", "  que ")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestUpdateSong_Partial(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	existing := &models.Song{
		ID:     "64b0c8f7a1b2c3d4e5f60718",
		Title:  "Old Title",
		Artist: "Queen",
		Owner:  "alice",
		Genre:  "Rock",
		Year:   1975,
	}

	st.EXPECT().SongByID(gomock.Any(), existing.ID, "alice").Return(existing, nil)
	st.EXPECT().UpdateSong(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, song *models.Song) error {
			require.Equal(t, "New Title", song.Title)
			// остальные поля не тронуты
			require.Equal(t, "Queen", song.Artist)
			require.Equal(t, 1975, song.Year)
			return nil
		})

	newTitle := "New Title"
	song, err := svc.UpdateSong(context.Background(), existing.ID, "alice", UpdateSongInput{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "New Title", song.Title)
	require.False(t, song.UpdatedAt.IsZero())
}

func TestUpdateSong_InvalidYear(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	existing := &models.Song{ID: "64b0c8f7a1b2c3d4e5f60718", Title: "Song", Artist: "Queen", Owner: "alice"}
	st.EXPECT().SongByID(gomock.Any(), existing.ID, "alice").Return(existing, nil)

	bad := time.Now().Year() + 1
	_, err := svc.UpdateSong(context.Background(), existing.ID, "alice", UpdateSongInput{Year: &bad})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateSong_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SongByID(gomock.Any(), "missing", "alice").Return(nil, storage.ErrNotFound)

	title := "x"
	_, err := svc.UpdateSong(context.Background(), "missing", "alice", UpdateSongInput{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSong(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().DeleteSong(gomock.Any(), "64b0c8f7a1b2c3d4e5f60718", "alice").Return(nil)
	require.NoError(t, svc.DeleteSong(context.Background(), "64b0c8f7a1b2c3d4e5f60718", "alice"))

	st.EXPECT().DeleteSong(gomock.Any(), "64b0c8f7a1b2c3d4e5f60718", "bob").Return(storage.ErrNotFound)
	err := svc.DeleteSong(context.Background(), "64b0c8f7a1b2c3d4e5f60718", "bob")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserStats_Aggregation(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	songs := []models.Song{
		{Title: "A", Artist: "Queen", Genre: "Rock", Year: 1975},
		{Title: "B", Artist: "Queen", Genre: "Rock", Year: 1980},
		{Title: "C", Artist: "ABBA", Genre: "Pop", Year: 1980},
		{Title: "D", Artist: "ABBA"}, // жанр и год не указаны
	}

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(activeUser(t, "alice", 0), nil)
	st.EXPECT().SongsByOwner(gomock.Any(), "alice").Return(songs, nil)

	stats, err := svc.UserStats(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 4, stats.TotalSongs)
	require.Equal(t, map[string]int{"Rock": 2, "Pop": 1}, stats.Genres)
	require.Equal(t, map[int]int{1975: 1, 1980: 2}, stats.Years)
	require.Equal(t, map[string]int{"Queen": 2, "ABBA": 2}, stats.Artists)
}

func TestUserStats_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	_, err := svc.UserStats(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListSongs(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := []models.Song{{ID: "1", Title: "A", Artist: "Queen", Owner: "alice"}}
	st.EXPECT().SongsByOwner(gomock.Any(), "alice").Return(want, nil)

	got, err := svc.ListSongs(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, want, got)
}
