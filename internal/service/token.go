package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pribylovaa/songs-service/internal/config"
)

// TokenTypeRefresh — значение claim "type" у refresh-токенов.
// Access-токены выпускаются без claim "type".
const TokenTypeRefresh = "refresh"

// Claims — расшифрованное содержимое токена.
//
// Version имеет смысл только при Type == TokenTypeRefresh: это снимок
// версии refresh-токена на момент выпуска. Отсутствующий claim "version"
// при декодировании трактуется как 0.
type Claims struct {
	// Subject — username владельца токена.
	Subject string
	// UserID — идентификатор учётной записи (hex ObjectID).
	UserID string
	// Type — "" для access-токенов, "refresh" для refresh-токенов.
	Type string
	// Version — версия refresh-токена на момент выпуска.
	Version int64
	// ExpiresAt — момент истечения (UTC).
	ExpiresAt time.Time
}

type jwtClaims struct {
	UserID  string `json:"uid,omitempty"`
	Type    string `json:"type,omitempty"`
	Version int64  `json:"version"`
	jwt.RegisteredClaims
}

// TokenCodec кодирует и декодирует подписанные токены. Без побочных эффектов:
// результат — чистая функция входа, секрета и настенных часов.
type TokenCodec struct {
	cfg config.AuthConfig
}

// NewTokenCodec создаёт кодек с заданными параметрами подписи.
func NewTokenCodec(cfg config.AuthConfig) *TokenCodec {
	return &TokenCodec{cfg: cfg}
}

// Encode сериализует claims, добавляет exp = now + ttl и подписывает HS256.
func (c *TokenCodec) Encode(cl Claims, ttl time.Duration) (string, error) {
	const op = "service/token/Encode"

	now := time.Now().UTC()

	claims := jwtClaims{
		UserID:  cl.UserID,
		Type:    cl.Type,
		Version: cl.Version,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cl.Subject,
			Issuer:    c.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// Decode проверяет подпись и срок действия; возвращает claims.
// Leeway нулевой: exp хотя бы на секунду в прошлом -> ErrTokenExpired.
// Любой другой дефект (подпись, формат, неожиданный алгоритм,
// пустой subject) -> ErrInvalidToken.
func (c *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	const op = "service/token/Decode"

	token, err := jwt.ParseWithClaims(tokenStr, &jwtClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(c.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.cfg.Issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	out := &Claims{
		Subject: claims.Subject,
		UserID:  claims.UserID,
		Type:    claims.Type,
		Version: claims.Version,
	}

	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}

	return out, nil
}
