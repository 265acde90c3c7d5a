// internal/app/features/ideas/ideas.go
package ideas

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	ideastore "github.com/syneroa/platform/internal/app/store/ideas"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/forms"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /ideas: approved ideas only.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := ideastore.New(h.DB).ListApproved(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeListAll handles GET /ideas/all: the admin review queue.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := ideastore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

type submitRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Email       string   `json:"email"`
	University  string   `json:"university"`
	Tags        []string `json:"tags"`
}

// HandleSubmit handles POST /ideas. New ideas always start pending.
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
		forms.Field{Name: "email", Value: req.Email, Email: true},
	); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	idea, err := ideastore.New(h.DB).Create(ctx, models.Idea{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		Email:       req.Email,
		University:  req.University,
		Tags:        req.Tags,
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusCreated, idea)
}

// HandleApprove handles POST /ideas/{id}/approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Approved)
}

// HandleReject handles POST /ideas/{id}/reject.
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

	store := ideastore.New(h.DB)
	if err := store.SetStatus(ctx, oid, v); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	idea, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, v, "idea", oid.Hex(), idea.Title)
	apierrors.WriteJSON(w, http.StatusOK, idea)
}

// HandleDelete handles DELETE /ideas/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := ideastore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "idea", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
