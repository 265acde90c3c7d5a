// internal/app/features/challenges/admin.go
package challenges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	challengestore "github.com/syneroa/platform/internal/app/store/challenges"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// challengeRequest is the admin create/edit payload. Sparse payloads
// are fine: the store fills status and counters.
type challengeRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Prize       string    `json:"prize"`
	Deadline    time.Time `json:"deadline"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status"`
}

// HandleCreate handles POST /challenges.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req challengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ch, err := challengestore.New(h.DB).Create(ctx, models.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Prize:       req.Prize,
		Deadline:    req.Deadline,
		Tags:        req.Tags,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, challengestore.ErrDuplicateTitle) {
			apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "create", "challenge", ch.ID.Hex(), ch.Title)
	apierrors.WriteJSON(w, http.StatusCreated, ch)
}

// HandleUpdate handles PUT /challenges/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	var req challengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := challengestore.New(h.DB)
	err = store.Update(ctx, oid, models.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Prize:       req.Prize,
		Deadline:    req.Deadline,
		Tags:        req.Tags,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, challengestore.ErrDuplicateTitle) {
			apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	ch, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "update", "challenge", oid.Hex(), ch.Title)
	apierrors.WriteJSON(w, http.StatusOK, ch)
}

// HandleDelete handles DELETE /challenges/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := challengestore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "challenge", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
