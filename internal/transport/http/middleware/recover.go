package middleware

import (
	"log/slog"
	"net/http"

	"github.com/pribylovaa/songs-service/internal/transport/http/apierrors"

	logctx "github.com/pribylovaa/songs-service/internal/pkg/log"
)

// Recover перехватывает panic, конвертирует в 500/internal и пишет унифицированный ответ.
// Детали паники не утекают на клиент.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					// Безопасно логируем факт паники; детали наружу не отдаем.
					logctx.From(r.Context()).
						LogAttrs(r.Context(), slog.LevelError, "panic",
							slog.String("path", r.URL.Path),
							slog.Any("reason", rec),
						)
					apierrors.WriteError(w, r, errInternal{})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// errInternal — неузнаваемая ошибка, которую apierrors конвертирует в 500.
type errInternal struct{}

func (errInternal) Error() string { return "internal" }
