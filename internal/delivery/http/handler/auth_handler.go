package handler

import (
	"fmt"
	"net/http"
	"strings"

	"vetify/internal/delivery/dto"
	"vetify/internal/usecase"
	"vetify/pkg/flash"
	"vetify/pkg/render"
	"vetify/pkg/session"
	"vetify/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	sessions    *session.Manager
	validator   *validator.CustomValidator
	render      *render.Engine
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	sessions *session.Manager,
	validator *validator.CustomValidator,
	render *render.Engine,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessions:    sessions,
		validator:   validator,
		render:      render,
	}
}

// LoginPage shows the login form, or sends an already-authenticated
// caller straight to the dashboard.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if user, err := h.sessions.Get(r.Context(), cookie.Value); err == nil && user != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
	}

	h.render.HTML(w, http.StatusOK, "login.html", viewData(w, r))
}

// Login verifies the credentials and establishes a session. The failure
// notice is the same for an unknown user and a wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flash.Set(w, flash.CategoryError, "Usuario o contraseña incorrectos.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	req := dto.LoginRequest{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: strings.TrimSpace(r.FormValue("password")),
	}

	if err := h.validator.Validate(&req); err != nil {
		flash.Set(w, flash.CategoryError, "Usuario o contraseña incorrectos.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			flash.Set(w, flash.CategoryError, "Usuario o contraseña incorrectos.")
			http.Redirect(w, r, "/login", http.StatusFound)
		default:
			serverError(w)
		}
		return
	}

	sessionID, err := h.sessions.Create(r.Context(), session.User{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		serverError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
	})

	flash.Set(w, flash.CategorySuccess, fmt.Sprintf("Bienvenido, %s.", user.Username))
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout destroys the server-side session and expires the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		_ = h.sessions.Destroy(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	flash.Set(w, flash.CategorySuccess, "Has cerrado sesión correctamente.")
	http.Redirect(w, r, "/login", http.StatusFound)
}
