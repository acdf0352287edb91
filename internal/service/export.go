package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
)

// ExportSong рендерит песню владельца в текстовый документ и пишет его
// в каталог выгрузок (cfg.Export.Dir). Возвращает имя файла и содержимое —
// HTTP-слой отдаёт его как вложение, CLI показывает путь.
func (s *Service) ExportSong(ctx context.Context, id, owner string) (string, []byte, error) {
	const op = "service/export/ExportSong"

	song, err := s.SongByID(ctx, id, owner)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	filename := sanitizeFilename(song.Artist+" - "+song.Title) + ".txt"

	var b strings.Builder
	b.WriteString("Song Information\n")
	b.WriteString("================\n\n")
	fmt.Fprintf(&b, "Title: %s\n", song.Title)
	fmt.Fprintf(&b, "Artist: %s\n", song.Artist)
	fmt.Fprintf(&b, "Owner: %s\n", song.Owner)

	if song.Genre != "" {
		fmt.Fprintf(&b, "Genre: %s\n", song.Genre)
	} else {
		b.WriteString("Genre: Not specified\n")
	}

	if song.Year != 0 {
		fmt.Fprintf(&b, "Year: %d\n", song.Year)
	} else {
		b.WriteString("Year: Not specified\n")
	}

	fmt.Fprintf(&b, "Added: %s\n", song.CreatedAt.Format("2006-01-02 15:04:05"))

	if !song.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "Last Updated: %s\n", song.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(&b, "Database ID: %s\n", song.ID)

	content := []byte(b.String())

	if dir := s.cfg.Export.Dir; dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", nil, fmt.Errorf("%s: mkdir: %w", op, err)
		}

		if err := os.WriteFile(filepath.Join(dir, filename), content, 0o644); err != nil {
			return "", nil, fmt.Errorf("%s: write: %w", op, err)
		}
	}

	return filename, content, nil
}

// sanitizeFilename убирает символы, небезопасные для файловых систем,
// схлопывает повторные подчёркивания и обрезает крайние.
func sanitizeFilename(name string) string {
	out := unsafeFilenameChars.ReplaceAllString(name, "_")
	out = repeatedUnderscores.ReplaceAllString(out, "_")
	return strings.Trim(out, "_ ")
}
