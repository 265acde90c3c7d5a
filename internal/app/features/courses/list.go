// internal/app/features/courses/list.go
package courses

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	coursestore "github.com/syneroa/platform/internal/app/store/courses"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/listview"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listResponse struct {
	Courses    []models.Course `json:"courses"`
	Categories []string        `json:"categories"`
}

// ServeList handles GET /courses: published courses, filterable by
// category ("All" disables the filter) and free-text search matched
// against title and instructor.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := coursestore.New(h.DB).ListPublished(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	filtered := listview.Filter(list,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"))

	apierrors.WriteJSON(w, http.StatusOK, listResponse{
		Courses:    filtered,
		Categories: listview.Categories(list),
	})
}

// ServeListAll handles GET /courses/all: the full catalog including
// drafts, for the admin panel.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := coursestore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /courses/{id}. Drafts are invisible here, same
// as in the public catalog list; a draft id answers 404 rather than
// confirming the course exists.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	co, err := coursestore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if co.Status != status.Published {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, co)
}
