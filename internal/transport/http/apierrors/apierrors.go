// apierrors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку (сентинел сервисного слоя),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/songs-service/internal/service"
)

// APIError — единый формат ошибки для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - все 401-сентинелы аутентификации отдаются с единым code=unauthenticated:
//     различие «нет такого пользователя»/«не тот пароль»/«отозван» наружу
//     не утекает;
//   - прочие неузнанные ошибки — 500/internal без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return internalError()
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, newResponse("unauthenticated", "unauthenticated")
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict, newResponse("already_exists", "username already registered")
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, newResponse("already_exists", "email already registered")
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, newResponse("not_found", "not found")
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, newResponse("permission_denied", "permission denied")
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, newResponse("invalid_argument", "invalid argument")
	default:
		return internalError()
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteUnauthorized пишет 401 с заданным машинным кодом (missing/malformed/
// invalid_token) — используется middleware аутентификации, где детализация
// причины не раскрывает ничего секретного.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, code string) {
	resp := newResponse(code, "unauthenticated")

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(resp)
}

func newResponse(code, msg string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

func internalError() (int, ErrorResponse) {
	return http.StatusInternalServerError, newResponse("internal", "internal error")
}
