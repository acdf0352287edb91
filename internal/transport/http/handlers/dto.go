package handlers

import (
	"time"

	"github.com/pribylovaa/songs-service/internal/models"
)

// DTO HTTP-слоя. Доменные модели наружу не отдаются напрямую:
// ответы собираются из view-структур, чтобы хэш пароля и версия
// refresh-токена физически не могли попасть в JSON.

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPairResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type userView struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type updateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type songView struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Artist    string     `json:"artist"`
	Owner     string     `json:"owner"`
	Genre     string     `json:"genre,omitempty"`
	Year      int        `json:"year,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type createSongRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Genre  string `json:"genre,omitempty"`
	Year   int    `json:"year,omitempty"`
}

type updateSongRequest struct {
	Title  *string `json:"title"`
	Artist *string `json:"artist"`
	Genre  *string `json:"genre"`
	Year   *int    `json:"year"`
}

type statsView struct {
	TotalSongs int            `json:"total_songs"`
	Genres     map[string]int `json:"genres"`
	Years      map[int]int    `json:"years"`
	Artists    map[string]int `json:"artists"`
}

func userFromModel(u *models.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: timePtr(u.UpdatedAt),
		LastLogin: timePtr(u.LastLogin),
	}
}

func songFromModel(s *models.Song) songView {
	return songView{
		ID:        s.ID,
		Title:     s.Title,
		Artist:    s.Artist,
		Owner:     s.Owner,
		Genre:     s.Genre,
		Year:      s.Year,
		CreatedAt: s.CreatedAt,
		UpdatedAt: timePtr(s.UpdatedAt),
	}
}

func tokensFromModel(p *models.TokenPair) tokenPairResponse {
	return tokenPairResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "bearer",
		ExpiresAt:    p.AccessExpiresAt,
	}
}

func statsFromModel(st *models.SongStats) statsView {
	return statsView{
		TotalSongs: st.TotalSongs,
		Genres:     st.Genres,
		Years:      st.Years,
		Artists:    st.Artists,
	}
}

// timePtr превращает нулевое время в nil, чтобы omitempty работал.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
