package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/songs-service/internal/service"
	"github.com/pribylovaa/songs-service/internal/transport/http/apierrors"
)

// CtxIdentity — ключ контекста с claims аутентифицированного пользователя.
const CtxIdentity ctxKey = "identity"

// TokenDecoder проверяет подпись access-токена и возвращает его claims.
type TokenDecoder interface {
	Decode(tokenStr string) (*service.Claims, error)
}

// Auth — шлюз аутентификации.
// Токен берётся из Authorization: Bearer <...>, при его отсутствии —
// из cookie access_token (браузерные клиенты). Refresh-токен в роли
// access-токена не принимается.
//
// Публичные маршруты задаются точным совпадением метода и пути:
// префиксные совпадения намеренно не поддерживаются, чтобы новый маршрут
// нельзя было случайно открыть наружу.
func Auth(dec TokenDecoder, public map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// CORS preflight не несёт учётных данных.
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := public[r.Method+" "+r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token, code := extractToken(r)
			if token == "" {
				apierrors.WriteUnauthorized(w, r, code)
				return
			}

			cl, err := dec.Decode(token)
			if err != nil {
				apierrors.WriteUnauthorized(w, r, "invalid_token")
				return
			}

			if cl.Type == service.TokenTypeRefresh {
				apierrors.WriteUnauthorized(w, r, "invalid_token")
				return
			}

			ctx := context.WithValue(r.Context(), CtxIdentity, cl)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom возвращает claims из контекста (nil — если запрос не прошёл Auth).
func IdentityFrom(ctx context.Context) *service.Claims {
	cl, _ := ctx.Value(CtxIdentity).(*service.Claims)
	return cl
}

// extractToken достаёт токен из заголовка или cookie.
// Второе значение — машинный код причины отказа при пустом токене.
func extractToken(r *http.Request) (string, string) {
	auth := r.Header.Get("Authorization")
	if auth != "" {
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return "", "malformed"
		}

		token := strings.TrimSpace(auth[len(prefix):])
		if token == "" {
			return "", "malformed"
		}

		return token, ""
	}

	if c, err := r.Cookie("access_token"); err == nil && c.Value != "" {
		return c.Value, ""
	}

	return "", "missing"
}
