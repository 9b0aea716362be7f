package handler

import (
	"net/http"

	"github.com/itchan-dev/agora/shared/api"
	"github.com/itchan-dev/agora/shared/csrf"
	"github.com/itchan-dev/agora/shared/logger"
	mw "github.com/itchan-dev/agora/shared/middleware"
)

// GetCSRFToken handles GET /v1/csrf. Browser clients echo the token in the
// X-CSRF-Token header on writes; the cookie is readable by scripts for that reason.
func (h *Handler) GetCSRFToken(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(mw.CSRFCookieName); err == nil && cookie.Value != "" {
		writeJSON(w, api.CSRFResponse{Token: cookie.Value})
		return
	}

	token, err := csrf.GenerateToken()
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate CSRF token", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mw.CSRFCookieName,
		Value:    token,
		Path:     "/",
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
	writeJSON(w, api.CSRFResponse{Token: token})
}
