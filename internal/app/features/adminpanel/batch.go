// internal/app/features/adminpanel/batch.go
package adminpanel

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// section is one collection the overview loads. Sections load
// concurrently and fail independently: one broken collection leaves
// the rest of the panel populated.
type section struct {
	name string
	load func(ctx context.Context) (any, error)
}

// batchRetries is how many extra times failed sections are retried
// before their errors are surfaced to the panel.
const batchRetries = 2

// batchBackoff returns the pause before retry n (0-based). Linear:
// 1s, then 2s.
func batchBackoff(n int) time.Duration {
	return time.Duration(1000*(n+1)) * time.Millisecond
}

// loadSections runs every section concurrently and retries the failed
// ones with linear backoff. It returns the loaded data and the error
// message per section that still failed after the retries.
func loadSections(ctx context.Context, log *zap.Logger, sections []section) (map[string]any, map[string]string) {
	data := make(map[string]any, len(sections))
	failed := make(map[string]string)

	var mu sync.Mutex
	pending := sections

	for attempt := 0; ; attempt++ {
		var wg sync.WaitGroup
		var retry []section

		for _, sec := range pending {
			wg.Add(1)
			go func(sec section) {
				defer wg.Done()

				v, err := sec.load(ctx)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.Warn("admin overview section failed",
						zap.String("section", sec.name),
						zap.Int("attempt", attempt),
						zap.Error(err))
					failed[sec.name] = err.Error()
					retry = append(retry, sec)
					return
				}
				data[sec.name] = v
				delete(failed, sec.name)
			}(sec)
		}
		wg.Wait()

		if len(retry) == 0 || attempt == batchRetries {
			break
		}

		select {
		case <-ctx.Done():
			return data, failed
		case <-time.After(batchBackoff(attempt)):
		}
		pending = retry
	}

	return data, failed
}
