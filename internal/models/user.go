// Package models содержит доменные сущности songs-сервиса.
package models

import "time"

// User — внутренняя доменная модель учётной записи (MongoDB).
// Важно:
//   - ID — ObjectID MongoDB в hex-виде; наружу отдаётся как string.
//   - PasswordHash — bcrypt-дайджест, наружу не отдаётся никогда.
//   - TokenVersion — текущая версия refresh-токена; монотонно растёт
//     при каждом успешном refresh (см. service/auth). Живым считается
//     только refresh-токен, чья версия равна TokenVersion.
//   - UpdatedAt/LastLogin — нулевое time.Time означает «ещё не было».
//   - IsActive=false — мягкая блокировка: логин и refresh запрещены.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	TokenVersion int64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    time.Time
}

// FullName возвращает полное имя пользователя или username, если имя не заполнено.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}
