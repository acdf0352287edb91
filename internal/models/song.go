package models

import "time"

// Song — внутренняя доменная модель песни (MongoDB).
// Важно:
//   - ID — ObjectID MongoDB в hex-виде.
//   - Owner — username владельца; все операции чтения/изменения по id
//     всегда фильтруются парой (id, owner), никогда по id в одиночку.
//   - Genre — опциональный жанр (пустая строка = не указан).
//   - Year — год выпуска; 0 = не указан, будущее запрещено валидацией.
//   - UpdatedAt — нулевое time.Time означает «не обновлялась».
type Song struct {
	ID        string
	Title     string
	Artist    string
	Owner     string
	Genre     string
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SongStats — агрегированная статистика коллекции одного пользователя.
type SongStats struct {
	TotalSongs int
	Genres     map[string]int
	Years      map[int]int
	Artists    map[string]int
}
