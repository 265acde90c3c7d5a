// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PageSize is the number of rows shown per page in admin review queues.
const PageSize = 50

// ParseStart extracts the 1-based "start" query parameter.
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// FindOptions returns newest-first find options for the page starting
// at the given 1-based index. One extra row is fetched so the caller
// can detect whether a next page exists; trim with Trim.
func FindOptions(start int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(start - 1)).
		SetLimit(int64(PageSize + 1))
}

// Result carries the pagination indicators for a trimmed page.
type Result struct {
	Start   int  `json:"start"`
	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
}

// Trim cuts a look-ahead fetch down to PageSize rows in place and
// reports whether pages exist on either side.
func Trim[T any](rows *[]T, start int) Result {
	res := Result{Start: start, HasPrev: start > 1}
	if len(*rows) > PageSize {
		*rows = (*rows)[:PageSize]
		res.HasNext = true
	}
	return res
}
