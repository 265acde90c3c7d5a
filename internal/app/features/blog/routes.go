// internal/app/features/blog/routes.go
package blog

import (
	"github.com/go-chi/chi/v5"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
)

// Routes mounts the blog routes under whatever base path the caller
// chooses (typically "/blog" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager, az *authz.Checker) chi.Router {
	r := chi.NewRouter()

	// Public: published posts and their comments.
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Get("/{id}/comments", h.ServeComments)

	// Commenting requires a signed-in account.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Post("/{id}/comments", h.HandleComment)
	})

	// Admin: post CRUD including drafts, comment cleanup.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(az.RequireAdmin)

		pr.Get("/all", h.ServeListAll)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Delete("/comments/{commentID}", h.HandleDeleteComment)
	})

	return r
}
