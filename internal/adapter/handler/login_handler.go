package handler

import (
	"errors"
	"net/http"

	"github.com/srgjo27/stay_booking/internal/core/domain"
	"github.com/srgjo27/stay_booking/internal/core/services"
	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

const (
	SessionCookieName = "session_id"

	msgLoginUnavailable = "Login is temporarily unavailable. Please try again."
)

type LoginHandler struct {
	svc          *services.AuthService
	renderer     *Renderer
	logger       *logging.Logger
	secureCookie bool
}

func NewLoginHandler(svc *services.AuthService, renderer *Renderer, logger *logging.Logger, secureCookie bool) *LoginHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &LoginHandler{svc: svc, renderer: renderer, logger: logger, secureCookie: secureCookie}
}

type loginPage struct {
	Username string
	Error    string
}

func (h *LoginHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, pageLogin, loginPage{})
}

func (h *LoginHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "The login form could not be read.")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	session, err := h.svc.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.renderer.Render(w, http.StatusUnauthorized, pageLogin, loginPage{
				Username: username,
				Error:    domain.MsgInvalidCredentials,
			})
			return
		}

		h.logger.ErrorContext(r.Context(), "login failed", "error", err)
		h.renderer.Render(w, http.StatusServiceUnavailable, pageLogin, loginPage{
			Username: username,
			Error:    msgLoginUnavailable,
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	// Readable by page scripts, mirroring the flag a browser keeps in local storage.
	http.SetCookie(w, &http.Cookie{
		Name:     domain.SessionFlagKey,
		Value:    domain.SessionFlagValue,
		Path:     "/",
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
