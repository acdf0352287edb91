// log — request-scoped перенос *slog.Logger через context.
// HTTP-мидлвар Logging кладёт сюда логгер с request_id; сервисный слой
// (service/auth, service/users) достаёт его через From и пишет
// диагностические записи, не зная про HTTP.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст запроса.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста; вне HTTP-запроса (CLI, тесты)
// возвращает slog.Default().
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}
