// internal/app/features/adminpanel/overview.go
package adminpanel

import (
	"context"
	"net/http"

	auditstore "github.com/syneroa/platform/internal/app/store/audit"
	blogpoststore "github.com/syneroa/platform/internal/app/store/blogposts"
	capstonestore "github.com/syneroa/platform/internal/app/store/capstones"
	challengestore "github.com/syneroa/platform/internal/app/store/challenges"
	contactmessagestore "github.com/syneroa/platform/internal/app/store/contactmessages"
	coursestore "github.com/syneroa/platform/internal/app/store/courses"
	ideastore "github.com/syneroa/platform/internal/app/store/ideas"
	partnerappstore "github.com/syneroa/platform/internal/app/store/partnerapps"
	problemstore "github.com/syneroa/platform/internal/app/store/problems"
	programstore "github.com/syneroa/platform/internal/app/store/programs"
	solutionstore "github.com/syneroa/platform/internal/app/store/solutions"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
)

// overviewResponse carries every collection the panel renders plus the
// sections that could not be loaded. Failed sections are absent from
// Sections and listed in Errors instead.
type overviewResponse struct {
	Sections map[string]any    `json:"sections"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// ServeOverview handles GET /admin/overview. All collections load
// concurrently; failed ones are retried with backoff and surfaced
// per-section so one bad collection never blanks the whole panel.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	sections := []section{
		{"challenges", func(ctx context.Context) (any, error) {
			return challengestore.New(h.DB).ListAll(ctx)
		}},
		{"solutions", func(ctx context.Context) (any, error) {
			return solutionstore.New(h.DB).ListAll(ctx)
		}},
		{"problems", func(ctx context.Context) (any, error) {
			return problemstore.New(h.DB).ListAll(ctx)
		}},
		{"capstoneProjects", func(ctx context.Context) (any, error) {
			return capstonestore.New(h.DB).ListAll(ctx)
		}},
		{"ideas", func(ctx context.Context) (any, error) {
			return ideastore.New(h.DB).ListAll(ctx)
		}},
		{"blogPosts", func(ctx context.Context) (any, error) {
			return blogpoststore.New(h.DB).ListAll(ctx)
		}},
		{"programs", func(ctx context.Context) (any, error) {
			return programstore.New(h.DB).ListAll(ctx)
		}},
		{"partnerApplications", func(ctx context.Context) (any, error) {
			return partnerappstore.New(h.DB).ListAll(ctx)
		}},
		{"contactMessages", func(ctx context.Context) (any, error) {
			return contactmessagestore.New(h.DB).ListAll(ctx)
		}},
		{"courses", func(ctx context.Context) (any, error) {
			return coursestore.New(h.DB).ListAll(ctx)
		}},
	}

	data, failed := loadSections(ctx, h.Log, sections)

	apierrors.WriteJSON(w, http.StatusOK, overviewResponse{
		Sections: data,
		Errors:   failed,
	})
}

// statsResponse is the headline numbers at the top of the panel.
type statsResponse struct {
	Challenges       int64 `json:"challenges"`
	PendingSolutions int64 `json:"pendingSolutions"`
	Problems         int64 `json:"problems"`
	IdeasPending     int64 `json:"ideasPending"`
	UnreadMessages   int64 `json:"unreadMessages"`
	PublishedCourses int64 `json:"publishedCourses"`
}

// ServeStats handles GET /admin/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var resp statsResponse
	var err error

	count := func(dst *int64, f func() (int64, error)) {
		if err != nil {
			return
		}
		*dst, err = f()
	}

	count(&resp.Challenges, func() (int64, error) {
		return challengestore.New(h.DB).Count(ctx, bson.M{})
	})
	count(&resp.PendingSolutions, func() (int64, error) {
		return solutionstore.New(h.DB).Count(ctx, bson.M{"status": status.Pending})
	})
	count(&resp.Problems, func() (int64, error) {
		return problemstore.New(h.DB).Count(ctx, bson.M{})
	})
	count(&resp.IdeasPending, func() (int64, error) {
		return ideastore.New(h.DB).Count(ctx, bson.M{"status": status.Pending})
	})
	count(&resp.UnreadMessages, func() (int64, error) {
		return contactmessagestore.New(h.DB).CountUnread(ctx)
	})
	count(&resp.PublishedCourses, func() (int64, error) {
		return coursestore.New(h.DB).Count(ctx, bson.M{"status": status.Published})
	})

	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, resp)
}

// ServeAuditTrail handles GET /admin/audit: the newest audit events.
func (h *Handler) ServeAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := auditstore.New(h.DB).ListRecent(ctx, 100)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, events)
}
