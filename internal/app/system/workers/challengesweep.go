// internal/app/system/workers/challengesweep.go
package workers

import (
	"context"
	"sync"
	"time"

	challengestore "github.com/syneroa/platform/internal/app/store/challenges"
	"go.uber.org/zap"
)

// ChallengeSweep is a background worker that deactivates challenges
// whose deadline has passed.
type ChallengeSweep struct {
	challenges *challengestore.Store
	log        *zap.Logger
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
}

// NewChallengeSweep creates a new challenge sweep worker.
//
// Parameters:
//   - chStore: the challenges store
//   - logger: zap logger for logging
//   - interval: how often to run the sweep (e.g., 15 minutes)
func NewChallengeSweep(chStore *challengestore.Store, logger *zap.Logger, interval time.Duration) *ChallengeSweep {
	return &ChallengeSweep{
		challenges: chStore,
		log:        logger,
		interval:   interval,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *ChallengeSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("challenge sweep worker started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *ChallengeSweep) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("challenge sweep worker stopped")
}

func (w *ChallengeSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *ChallengeSweep) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := w.challenges.DeactivatePastDeadline(ctx, time.Now().UTC())
	if err != nil {
		w.log.Error("failed to deactivate expired challenges", zap.Error(err))
		return
	}

	if count > 0 {
		w.log.Info("deactivated expired challenges", zap.Int64("count", count))
	}
}
