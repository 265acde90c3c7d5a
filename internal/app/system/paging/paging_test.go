// internal/app/system/paging/paging_test.go
package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParseStart(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"missing", "", 1},
		{"valid", "start=51", 51},
		{"zero", "start=0", 1},
		{"negative", "start=-5", 1},
		{"garbage", "start=abc", 1},
		{"first", "start=1", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/solutions/all?"+tt.query, nil)
			if got := ParseStart(r); got != tt.want {
				t.Errorf("ParseStart(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	full := make([]int, PageSize+1)
	for i := range full {
		full[i] = i
	}

	t.Run("full page with next", func(t *testing.T) {
		rows := append([]int(nil), full...)
		res := Trim(&rows, 1)
		if len(rows) != PageSize {
			t.Errorf("len = %d, want %d", len(rows), PageSize)
		}
		if !res.HasNext {
			t.Error("HasNext = false, want true")
		}
		if res.HasPrev {
			t.Error("HasPrev = true, want false on first page")
		}
	})

	t.Run("partial last page", func(t *testing.T) {
		rows := []int{1, 2, 3}
		res := Trim(&rows, PageSize+1)
		if len(rows) != 3 {
			t.Errorf("len = %d, want 3", len(rows))
		}
		if res.HasNext {
			t.Error("HasNext = true, want false")
		}
		if !res.HasPrev {
			t.Error("HasPrev = false, want true past first page")
		}
	})

	t.Run("empty", func(t *testing.T) {
		var rows []int
		res := Trim(&rows, 1)
		if len(rows) != 0 || res.HasNext || res.HasPrev {
			t.Errorf("empty page: got %+v", res)
		}
	})
}

func TestFindOptions(t *testing.T) {
	opts := FindOptions(51)
	if got := *opts.Skip; got != 50 {
		t.Errorf("skip = %d, want 50", got)
	}
	if got := *opts.Limit; got != int64(PageSize+1) {
		t.Errorf("limit = %d, want %d", got, PageSize+1)
	}
}
