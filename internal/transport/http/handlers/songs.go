package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/service"
	"github.com/pribylovaa/songs-service/internal/transport/http/apierrors"
)

func (h *Handlers) CreateSong(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	var in createSongRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	song, err := h.Svc.AddSong(r.Context(), service.AddSongInput{
		Title:  in.Title,
		Artist: in.Artist,
		Owner:  cl.Subject,
		Genre:  in.Genre,
		Year:   in.Year,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, songFromModel(song))
}

func (h *Handlers) ListSongs(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	songs, err := h.Svc.ListSongs(r.Context(), cl.Subject)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songsToViews(songs))
}

func (h *Handlers) SearchSongs(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	songs, err := h.Svc.SearchSongs(r.Context(), cl.Subject, r.URL.Query().Get("query"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songsToViews(songs))
}

func (h *Handlers) GetSong(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	song, err := h.Svc.SongByID(r.Context(), chi.URLParam(r, "id"), cl.Subject)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songFromModel(song))
}

func (h *Handlers) UpdateSong(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	var in updateSongRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	song, err := h.Svc.UpdateSong(r.Context(), chi.URLParam(r, "id"), cl.Subject, service.UpdateSongInput{
		Title:  in.Title,
		Artist: in.Artist,
		Genre:  in.Genre,
		Year:   in.Year,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, songFromModel(song))
}

func (h *Handlers) DeleteSong(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.Svc.DeleteSong(r.Context(), chi.URLParam(r, "id"), cl.Subject); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportSong отдаёт текстовую карточку песни как attachment.
func (h *Handlers) ExportSong(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	filename, content, err := h.Svc.ExportSong(r.Context(), chi.URLParam(r, "id"), cl.Subject)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func songsToViews(songs []models.Song) []songView {
	out := make([]songView, 0, len(songs))
	for i := range songs {
		out = append(out, songFromModel(&songs[i]))
	}
	return out
}
