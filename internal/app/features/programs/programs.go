// internal/app/features/programs/programs.go
package programs

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	programstore "github.com/syneroa/platform/internal/app/store/programs"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/listview"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listResponse struct {
	Programs   []models.Program `json:"programs"`
	Categories []string         `json:"categories"`
}

// ServeList handles GET /programs: active programs, filterable by type
// ("All" disables the filter) and free-text search.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := programstore.New(h.DB).ListActive(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	filtered := listview.Filter(list,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"))

	apierrors.WriteJSON(w, http.StatusOK, listResponse{
		Programs:   filtered,
		Categories: listview.Categories(list),
	})
}

// ServeListAll handles GET /programs/all: every program for the admin
// panel.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := programstore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /programs/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := programstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, p)
}

// programRequest is the admin create/edit payload. Type is a closed
// enum validated by the store.
type programRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Duration    string   `json:"duration"`
	Commitment  string   `json:"commitment"`
	Benefits    []string `json:"benefits"`
	Status      string   `json:"status"`
}

// HandleCreate handles POST /programs.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := programstore.New(h.DB).Create(ctx, models.Program{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Duration:    req.Duration,
		Commitment:  req.Commitment,
		Benefits:    req.Benefits,
		Status:      req.Status,
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "create", "program", p.ID.Hex(), p.Title)
	apierrors.WriteJSON(w, http.StatusCreated, p)
}

// HandleUpdate handles PUT /programs/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	var req programRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := programstore.New(h.DB)
	err = store.Update(ctx, oid, models.Program{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Duration:    req.Duration,
		Commitment:  req.Commitment,
		Benefits:    req.Benefits,
		Status:      req.Status,
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	p, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "update", "program", oid.Hex(), p.Title)
	apierrors.WriteJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /programs/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := programstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "program", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
