// internal/app/features/problems/problems.go
package problems

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	problemstore "github.com/syneroa/platform/internal/app/store/problems"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/forms"
	"github.com/syneroa/platform/internal/app/system/listview"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listResponse struct {
	Problems   []models.Problem `json:"problems"`
	Categories []string         `json:"categories"`
}

// ServeList handles GET /problems. Optional query params: category
// ("All" disables the filter), search (matched against title and
// submitter).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := problemstore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	filtered := listview.Filter(list,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"))

	apierrors.WriteJSON(w, http.StatusOK, listResponse{
		Problems:   filtered,
		Categories: listview.Categories(list),
	})
}

// ServeGet handles GET /problems/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := problemstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, p)
}

type submitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SubmittedBy string `json:"submittedBy"`
}

// HandleSubmit handles POST /problems: the public problem submission
// form.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	if err := forms.Required(
		forms.Field{Name: "title", Value: req.Title},
		forms.Field{Name: "description", Value: req.Description},
	); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := problemstore.New(h.DB).Create(ctx, models.Problem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		SubmittedBy: req.SubmittedBy,
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusCreated, p)
}

type upvoteResponse struct {
	Votes int `json:"votes"`
}

// HandleUpvote handles POST /problems/{id}/upvote. The counter is
// read-then-write: concurrent upvotes can race and the occasional lost
// increment is accepted.
func (h *Handler) HandleUpvote(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	votes, err := problemstore.New(h.DB).Upvote(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, upvoteResponse{Votes: votes})
}

// HandleDelete handles DELETE /problems/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := problemstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "problem", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
