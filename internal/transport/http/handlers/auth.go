package handlers

import (
	"net/http"

	"github.com/pribylovaa/songs-service/internal/service"
	"github.com/pribylovaa/songs-service/internal/transport/http/apierrors"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.Svc.Register(r.Context(), service.RegisterInput{
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userFromModel(user))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	pair, user, err := h.Svc.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.setAuthCookies(w, pair.AccessToken, pair.RefreshToken)

	resp := struct {
		tokenPairResponse
		User userView `json:"user"`
	}{
		tokenPairResponse: tokensFromModel(pair),
		User:              userFromModel(user),
	}
	writeJSON(w, http.StatusOK, resp)
}

// Refresh принимает refresh-токен из тела запроса либо из cookie
// refresh_token (браузерные клиенты без JS-доступа к токену).
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	// пустое тело допустимо, если есть cookie.
	_ = decodeStrict(r, &in)

	token := in.RefreshToken
	if token == "" {
		if c, err := r.Cookie("refresh_token"); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	pair, err := h.Svc.Refresh(r.Context(), token)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.setAuthCookies(w, pair.AccessToken, pair.RefreshToken)
	writeJSON(w, http.StatusOK, tokensFromModel(pair))
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	cl, ok := identity(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.CurrentUser(r.Context(), cl.Subject)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

// Logout гасит auth-cookie. Сами токены при этом не отзываются:
// access доживает свой короткий TTL, refresh инвалидируется
// следующей ротацией версии.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}

	if err := h.Svc.Logout(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.clearAuthCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "successfully logged out"})
}

func (h *Handlers) setAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    access,
		Path:     "/",
		MaxAge:   int(h.Cfg.Auth.AccessTokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Path:     "/",
		MaxAge:   int(h.Cfg.Auth.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{"access_token", "refresh_token"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
