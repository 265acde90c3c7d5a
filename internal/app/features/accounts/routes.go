// internal/app/features/accounts/routes.go
package accounts

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth endpoints under whatever base path the caller
// chooses (typically "/auth" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)
	r.Get("/session", h.ServeSession)

	return r
}
