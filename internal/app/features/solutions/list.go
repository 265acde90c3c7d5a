// internal/app/features/solutions/list.go
package solutions

import (
	"context"
	"net/http"

	solutionstore "github.com/syneroa/platform/internal/app/store/solutions"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/listview"
	"github.com/syneroa/platform/internal/app/system/paging"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listResponse wraps the filtered solutions with the category options
// the filter bar renders.
type listResponse struct {
	Solutions  []models.Solution `json:"solutions"`
	Categories []string          `json:"categories"`
}

// ServeList handles GET /solutions. Only approved solutions are shown.
// Optional query params: challengeId, category ("All" disables the
// filter), search (case-insensitive, matched against title and author).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := solutionstore.New(h.DB)

	var (
		list []models.Solution
		err  error
	)
	if hex := r.URL.Query().Get("challengeId"); hex != "" {
		oid, idErr := primitive.ObjectIDFromHex(hex)
		if idErr != nil {
			apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
			return
		}
		list, err = store.ListApprovedByChallenge(ctx, oid)
	} else {
		list, err = store.ListApproved(ctx)
	}
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	filtered := listview.Filter(list,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"))

	apierrors.WriteJSON(w, http.StatusOK, listResponse{
		Solutions:  filtered,
		Categories: listview.Categories(list),
	})
}

// adminListResponse is one page of the review queue.
type adminListResponse struct {
	Solutions []models.Solution `json:"solutions"`
	Page      paging.Result     `json:"page"`
}

// ServeListAll handles GET /solutions/all: the admin review queue,
// every status included, paged with a 1-based "start" parameter.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	start := paging.ParseStart(r)
	list, err := solutionstore.New(h.DB).ListPage(ctx, start)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	page := paging.Trim(&list, start)
	apierrors.WriteJSON(w, http.StatusOK, adminListResponse{Solutions: list, Page: page})
}
