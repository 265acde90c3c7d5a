// internal/app/features/contact/routes.go
package contact

import (
	"github.com/go-chi/chi/v5"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
)

// Routes mounts the contact routes under whatever base path the caller
// chooses (typically "/contact" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager, az *authz.Checker) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleSubmit)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(az.RequireAdmin)

		pr.Get("/", h.ServeList)
		pr.Post("/{id}/read", h.HandleMarkRead)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
