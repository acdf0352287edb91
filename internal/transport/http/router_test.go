package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/songs-service/internal/config"
	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/service"
	"github.com/pribylovaa/songs-service/internal/storage"
	"github.com/pribylovaa/songs-service/mocks"
)

func testConfig() config.Config {
	return config.Config{
		Env: "local",
		Auth: config.AuthConfig{
			JWTSecret:       "unit-secret",
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
			Issuer:          "songs-service",
		},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Timeouts: config.TimeoutConfig{Service: 2 * time.Second},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *service.Service, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStorage(ctrl)
	cfg := testConfig()
	svc := service.New(st, cfg)

	handler := NewRouter(svc, cfg, Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Timeout: cfg.Timeouts.Service,
	})
	return handler, svc, st
}

func bearerReq(t *testing.T, svc *service.Service, method, target string, body any) *http.Request {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := svc.Codec().Encode(service.Claims{Subject: "alice", UserID: "uid-1"}, time.Minute)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func storedUser(t *testing.T, username string, version int64) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.User{
		ID:           "507f1f77bcf86cd799439011",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		TokenVersion: version,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestRouter_RegisterCreated(t *testing.T) {
	handler, _, st := newTestRouter(t)

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) (*models.User, error) {
			out := *u
			out.ID = "507f1f77bcf86cd799439011"
			return &out, nil
		})

	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "Password1",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "alice", resp["username"])
	// имя не заполнено, full_name падает на username
	require.Equal(t, "alice", resp["full_name"])
	// хэш пароля и версия токена не сериализуются
	require.NotContains(t, rr.Body.String(), "password")
	require.NotContains(t, rr.Body.String(), "token_version")
}

func TestRouter_RegisterConflict(t *testing.T) {
	handler, _, st := newTestRouter(t)

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(storedUser(t, "alice", 0), nil)

	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "Password1",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestRouter_LoginSetsCookies(t *testing.T) {
	handler, _, st := newTestRouter(t)

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(storedUser(t, "alice", 0), nil)
	st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "Password1"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		User         struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, "bearer", resp.TokenType)
	require.Equal(t, "alice", resp.User.Username)

	cookies := rr.Result().Cookies()
	names := map[string]*http.Cookie{}
	for _, c := range cookies {
		names[c.Name] = c
	}
	require.Contains(t, names, "access_token")
	require.Contains(t, names, "refresh_token")
	require.True(t, names["access_token"].HttpOnly)
	require.True(t, names["refresh_token"].HttpOnly)
}

// Неверный логин и неверный пароль неразличимы по ответу.
func TestRouter_LoginUniform401(t *testing.T) {
	handler, _, st := newTestRouter(t)

	st.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByEmail(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	body, _ := json.Marshal(map[string]string{"username": "ghost", "password": "Password1"})
	rr1 := httptest.NewRecorder()
	handler.ServeHTTP(rr1, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(storedUser(t, "alice", 0), nil)

	body2, _ := json.Marshal(map[string]string{"username": "alice", "password": "WrongPass1"})
	rr2 := httptest.NewRecorder()
	handler.ServeHTTP(rr2, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body2)))

	require.Equal(t, http.StatusUnauthorized, rr1.Code)
	require.Equal(t, http.StatusUnauthorized, rr2.Code)
	require.JSONEq(t, rr1.Body.String(), rr2.Body.String())
}

func TestRouter_RefreshFromCookie(t *testing.T) {
	handler, svc, st := newTestRouter(t)

	refresh, err := svc.Codec().Encode(service.Claims{
		Subject: "alice",
		Type:    service.TokenTypeRefresh,
		Version: 0,
	}, time.Hour)
	require.NoError(t, err)

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(storedUser(t, "alice", 0), nil)
	st.EXPECT().BumpTokenVersion(gomock.Any(), "alice", int64(0)).Return(int64(1), nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	cl, err := svc.Codec().Decode(resp.RefreshToken)
	require.NoError(t, err)
	require.EqualValues(t, 1, cl.Version)
}

func TestRouter_RefreshWithoutToken(t *testing.T) {
	handler, _, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/refresh", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_ProtectedWithoutToken(t *testing.T) {
	handler, _, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/songs"},
		{http.MethodPost, "/songs"},
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/users"},
	} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		require.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_CreateAndGetSong(t *testing.T) {
	handler, svc, st := newTestRouter(t)

	st.EXPECT().CreateSong(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, song models.Song) (*models.Song, error) {
			require.Equal(t, "alice", song.Owner)
			out := song
			out.ID = "64b0c8f7a1b2c3d4e5f60718"
			out.CreatedAt = time.Now().UTC()
			return &out, nil
		})

	req := bearerReq(t, svc, http.MethodPost, "/songs", map[string]any{
		"title":  "Bohemian Rhapsody",
		"artist": "Queen",
		"genre":  "Rock",
		"year":   1975,
	})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	st.EXPECT().SongByID(gomock.Any(), "64b0c8f7a1b2c3d4e5f60718", "alice").Return(&models.Song{
		ID:     "64b0c8f7a1b2c3d4e5f60718",
		Title:  "Bohemian Rhapsody",
		Artist: "Queen",
		Owner:  "alice",
	}, nil)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, bearerReq(t, svc, http.MethodGet, "/songs/64b0c8f7a1b2c3d4e5f60718", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var song map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &song))
	require.Equal(t, "Queen", song["artist"])
}

// Чужая песня отдаёт 404, как и несуществующая.
func TestRouter_ForeignSong404(t *testing.T) {
	handler, svc, st := newTestRouter(t)

	st.EXPECT().SongByID(gomock.Any(), "64b0c8f7a1b2c3d4e5f60718", "alice").Return(nil, storage.ErrNotFound)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, bearerReq(t, svc, http.MethodGet, "/songs/64b0c8f7a1b2c3d4e5f60718", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_FutureYear400(t *testing.T) {
	handler, svc, _ := newTestRouter(t)

	req := bearerReq(t, svc, http.MethodPost, "/songs", map[string]any{
		"title":  "Song",
		"artist": "Band",
		"year":   time.Now().Year() + 1,
	})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_DeleteSong204(t *testing.T) {
	handler, svc, st := newTestRouter(t)

	st.EXPECT().DeleteSong(gomock.Any(), "64b0c8f7a1b2c3d4e5f60718", "alice").Return(nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, bearerReq(t, svc, http.MethodDelete, "/songs/64b0c8f7a1b2c3d4e5f60718", nil))

	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRouter_SearchShortQuery400(t *testing.T) {
	handler, svc, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, bearerReq(t, svc, http.MethodGet, "/songs/search?query=a", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_ExportAttachment(t *testing.T) {
	handler, svc, st := newTestRouter(t)

	st.EXPECT().SongByID(gomock.Any(), "64b0c8f7a1b2c3d4e5f60718", "alice").Return(&models.Song{
		ID:        "64b0c8f7a1b2c3d4e5f60718",
		Title:     "Bohemian Rhapsody",
		Artist:    "Queen",
		Owner:     "alice",
		CreatedAt: time.Now().UTC(),
	}, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, bearerReq(t, svc, http.MethodGet, "/songs/64b0c8f7a1b2c3d4e5f60718/export", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, `attachment; filename="Queen - Bohemian Rhapsody.txt"`, rr.Header().Get("Content-Disposition"))
	require.Contains(t, rr.Body.String(), "Song Information")
}

func TestRouter_UpdateForeignUser403(t *testing.T) {
	handler, svc, _ := newTestRouter(t)

	req := bearerReq(t, svc, http.MethodPut, "/users/bob", map[string]string{"first_name": "Eve"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_UserStats(t *testing.T) {
	handler, svc, st := newTestRouter(t)

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(storedUser(t, "alice", 0), nil)
	st.EXPECT().SongsByOwner(gomock.Any(), "alice").Return([]models.Song{
		{Title: "A", Artist: "Queen", Genre: "Rock", Year: 1975},
		{Title: "B", Artist: "Queen"},
	}, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, bearerReq(t, svc, http.MethodGet, "/users/alice/stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var stats struct {
		TotalSongs int            `json:"total_songs"`
		Artists    map[string]int `json:"artists"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	require.Equal(t, 2, stats.TotalSongs)
	require.Equal(t, map[string]int{"Queen": 2}, stats.Artists)
}

func TestRouter_HealthEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	cfg := testConfig()
	svc := service.New(st, cfg)

	readyErr := errors.New("mongo down")
	ready := func(context.Context) error { return readyErr }

	handler := NewRouter(svc, cfg, Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Ready:  ready,
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	readyErr = nil
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_LogoutClearsCookies(t *testing.T) {
	handler, svc, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, bearerReq(t, svc, http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	cleared := 0
	for _, c := range rr.Result().Cookies() {
		if c.Name == "access_token" || c.Name == "refresh_token" {
			require.Less(t, c.MaxAge, 0)
			cleared++
		}
	}
	require.Equal(t, 2, cleared)
}
