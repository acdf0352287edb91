package middleware

import (
	"net/http"
)

// Middleware — стандартный net/http мидлвар. Роутер songs-сервиса собирает
// цепочку Recover -> RequestID -> Logging -> CORS -> Metrics -> Timeout -> Auth;
// порядок важен: request_id должен появиться до логирования, а Auth стоит
// последним, чтобы отказы тоже попадали в лог и метрики.
type Middleware func(http.Handler) http.Handler

// Chain применяет мидлвары к обработчику в порядке их перечисления:
// первый в списке оказывается внешним.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusWriter перехватывает статус и размер ответа; его делят
// Logging и метрики Prometheus.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}
