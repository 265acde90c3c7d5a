// internal/app/features/capstones/capstones.go
package capstones

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	capstonestore "github.com/syneroa/platform/internal/app/store/capstones"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/forms"
	"github.com/syneroa/platform/internal/app/system/listview"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listResponse struct {
	Projects   []models.CapstoneProject `json:"projects"`
	Categories []string                 `json:"categories"`
}

// ServeList handles GET /capstones: approved projects only, filterable
// by university and free-text search.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := capstonestore.New(h.DB).ListApproved(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	filtered := listview.Filter(list,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"))

	apierrors.WriteJSON(w, http.StatusOK, listResponse{
		Projects:   filtered,
		Categories: listview.Categories(list),
	})
}

// ServeListAll handles GET /capstones/all: the admin review queue.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := capstonestore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

type submitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
	University  string `json:"university"`
}

// HandleSubmit handles POST /capstones. New projects always start
// in_review.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	if err := forms.Required(
		forms.Field{Name: "title", Value: req.Title},
		forms.Field{Name: "description", Value: req.Description},
		forms.Field{Name: "author", Value: req.Author},
	); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cp, err := capstonestore.New(h.DB).Create(ctx, models.CapstoneProject{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		University:  req.University,
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusCreated, cp)
}

// HandleApprove handles POST /capstones/{id}/approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Approved)
}

// HandleReject handles POST /capstones/{id}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Rejected)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, v string) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := capstonestore.New(h.DB)
	if err := store.SetStatus(ctx, oid, v); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	cp, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, v, "capstone_project", oid.Hex(), cp.Title)
	apierrors.WriteJSON(w, http.StatusOK, cp)
}

// HandleDelete handles DELETE /capstones/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := capstonestore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "capstone_project", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
