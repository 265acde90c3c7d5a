// internal/app/features/challenges/routes.go
package challenges

import (
	"github.com/go-chi/chi/v5"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
)

// Routes mounts the challenge routes under whatever base path the
// caller chooses (typically "/challenges" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager, az *authz.Checker) chi.Router {
	r := chi.NewRouter()

	// Public: active challenges and individual detail pages.
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	// Admin: full CRUD including inactive challenges.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(az.RequireAdmin)

		pr.Get("/all", h.ServeListAll)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
