package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout навешивает на запрос общий deadline (cfg.Timeouts.Service):
// через контекст он доходит до mongo-driver и обрывает зависшие запросы к БД.
// Значение <=0 делает мидлвар no-op.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Уже установленный deadline не перетираем.
			if _, ok := r.Context().Deadline(); ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
