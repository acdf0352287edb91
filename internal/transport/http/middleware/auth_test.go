package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/songs-service/internal/service"
)

func authGate() (Middleware, *service.TokenCodec) {
	codec := testCodec()
	public := map[string]struct{}{
		"GET /healthz":     {},
		"POST /auth/login": {},
	}
	return Auth(codec, public), codec
}

func decodeErrCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error.Code
}

func TestAuth_PublicRoutePasses(t *testing.T) {
	gate, _ := authGate()

	hit := false
	rr := httptest.NewRecorder()
	gate(okHandler(&hit)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.True(t, hit)
	require.Equal(t, http.StatusOK, rr.Code)
}

// Совпадение только точное: метод и путь вместе.
func TestAuth_ExactMatchOnly(t *testing.T) {
	gate, _ := authGate()

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/healthz/sub"},
		{http.MethodPost, "/healthz"},
		{http.MethodGet, "/auth/login"},
	} {
		hit := false
		rr := httptest.NewRecorder()
		gate(okHandler(&hit)).ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))

		require.False(t, hit, "%s %s", tc.method, tc.path)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	}
}

func TestAuth_OptionsSkipped(t *testing.T) {
	gate, _ := authGate()

	hit := false
	rr := httptest.NewRecorder()
	gate(okHandler(&hit)).ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/songs", nil))

	require.True(t, hit)
}

func TestAuth_MissingToken(t *testing.T) {
	gate, _ := authGate()

	rr := httptest.NewRecorder()
	gate(okHandler(new(bool))).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/songs", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "missing", decodeErrCode(t, rr))
}

func TestAuth_MalformedHeader(t *testing.T) {
	gate, _ := authGate()

	for _, h := range []string{"Basic abc", "Bearer", "Bearer   "} {
		req := httptest.NewRequest(http.MethodGet, "/songs", nil)
		req.Header.Set("Authorization", h)
		rr := httptest.NewRecorder()
		gate(okHandler(new(bool))).ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code, "header %q", h)
		require.Equal(t, "malformed", decodeErrCode(t, rr), "header %q", h)
	}
}

func TestAuth_ValidBearer(t *testing.T) {
	gate, codec := authGate()

	token, err := codec.Encode(service.Claims{Subject: "alice", UserID: "uid-1"}, time.Minute)
	require.NoError(t, err)

	var got *service.Claims
	h := gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	require.Equal(t, "alice", got.Subject)
	require.Equal(t, "uid-1", got.UserID)
}

// Заголовка нет — токен берётся из cookie access_token.
func TestAuth_CookieFallback(t *testing.T) {
	gate, codec := authGate()

	token, err := codec.Encode(service.Claims{Subject: "alice"}, time.Minute)
	require.NoError(t, err)

	var got *service.Claims
	h := gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	require.Equal(t, "alice", got.Subject)
}

// Заголовок приоритетнее cookie: кривой Bearer не маскируется валидной cookie.
func TestAuth_HeaderBeatsCookie(t *testing.T) {
	gate, codec := authGate()

	token, err := codec.Encode(service.Claims{Subject: "alice"}, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set("Authorization", "Basic nope")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	rr := httptest.NewRecorder()
	gate(okHandler(new(bool))).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	gate, codec := authGate()

	token, err := codec.Encode(service.Claims{Subject: "alice"}, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	gate(okHandler(new(bool))).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "invalid_token", decodeErrCode(t, rr))
}

// Refresh-токен не принимается как access: им нельзя ходить в API.
func TestAuth_RefreshTokenRejected(t *testing.T) {
	gate, codec := authGate()

	token, err := codec.Encode(service.Claims{
		Subject: "alice",
		Type:    service.TokenTypeRefresh,
		Version: 1,
	}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	gate(okHandler(new(bool))).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "invalid_token", decodeErrCode(t, rr))
}
