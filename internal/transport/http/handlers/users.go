package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/songs-service/internal/service"
	"github.com/pribylovaa/songs-service/internal/transport/http/apierrors"
)

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.ListUsers(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]userView, 0, len(users))
	for i := range users {
		out = append(out, userFromModel(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.UserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	var in updateUserRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.Svc.UpdateUser(r.Context(), cl.Subject, chi.URLParam(r, "username"), service.UpdateUserInput{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.Svc.DeleteUser(r.Context(), cl.Subject, chi.URLParam(r, "username")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserActive(w, r, true)
}

func (h *Handlers) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserActive(w, r, false)
}

func (h *Handlers) setUserActive(w http.ResponseWriter, r *http.Request, active bool) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.SetUserActive(r.Context(), cl.Subject, chi.URLParam(r, "username"), active)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

func (h *Handlers) UserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.UserStats(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsFromModel(stats))
}
