package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Gaetan-M/SocialWishlist/internal/auth"
	"github.com/Gaetan-M/SocialWishlist/internal/domain"
	"github.com/Gaetan-M/SocialWishlist/internal/middleware"
)

type registerRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type userDTO struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name"`
	CreatedAt   string  `json:"created_at"`
}

func toUserDTO(user *domain.User) userDTO {
	return userDTO{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") || len(req.Password) < 8 {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}

	if _, err := a.Users.GetByEmail(r.Context(), req.Email); err == nil {
		a.error(w, r, http.StatusBadRequest, "email_taken")
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		a.Logger.Error().Err(err).Msg("lookup email failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.Logger.Error().Err(err).Msg("hash password failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	user := &domain.User{Email: req.Email, PasswordHash: hash, DisplayName: req.DisplayName}
	if err := a.Users.Create(r.Context(), user); err != nil {
		a.Logger.Error().Err(err).Msg("create user failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	a.issueSession(w, r, http.StatusCreated, user)
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}

	user, err := a.Users.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		a.error(w, r, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		a.error(w, r, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	a.issueSession(w, r, http.StatusOK, user)
}

func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		a.error(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		a.error(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	a.json(w, http.StatusOK, toUserDTO(user))
}

func (a *App) issueSession(w http.ResponseWriter, r *http.Request, status int, user *domain.User) {
	token, err := a.Tokens.Issue(user.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign token failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.TokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   a.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	a.json(w, status, tokenResponse{Token: token, User: toUserDTO(user)})
}
