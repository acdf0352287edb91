package models

import "time"

// TokenPair — пара токенов, выдаваемая при логине и при ротации.
//
// Описание:
//   - AccessToken — короткоживущий JWT для доступа к API;
//   - RefreshToken — долгоживущий JWT c type=refresh и номером версии;
//     живым остаётся только последний выпущенный (см. User.TokenVersion);
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}
