package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pribylovaa/songs-service/internal/config"
	"github.com/pribylovaa/songs-service/internal/service"
	"github.com/pribylovaa/songs-service/internal/transport/http/apierrors"
	"github.com/pribylovaa/songs-service/internal/transport/http/middleware"
)

// Handlers агрегирует зависимости (сервисный слой и конфиг cookie/TTL).
type Handlers struct {
	Svc *service.Service
	Cfg config.Config
}

func New(svc *service.Service, cfg config.Config) *Handlers {
	return &Handlers{Svc: svc, Cfg: cfg}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга -> 400/invalid_argument.
func errInvalidArgument() error {
	return fmt.Errorf("decode request: %w", service.ErrInvalidArgument)
}

// identity возвращает claims запроса; отсутствие — программная ошибка
// маршрутизации (защищённый хендлер без Auth-гейта), отвечаем 401.
func identity(w http.ResponseWriter, r *http.Request) (*service.Claims, bool) {
	cl := middleware.IdentityFrom(r.Context())
	if cl == nil {
		apierrors.WriteUnauthorized(w, r, "missing")
		return nil, false
	}
	return cl, true
}
