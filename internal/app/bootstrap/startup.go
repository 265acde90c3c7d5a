// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	challengestore "github.com/syneroa/platform/internal/app/store/challenges"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/app/system/workers"
	"go.uber.org/zap"
)

// challengeSweep is started in Startup and stopped in Shutdown.
var challengeSweep *workers.ChallengeSweep

// Startup runs one-time application initialization after DB
// connections and schema setup are complete, but before the HTTP
// handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("overrides", n))
	}

	if appCfg.ChallengeSweepInterval > 0 {
		challengeSweep = workers.NewChallengeSweep(
			challengestore.New(deps.MongoDatabase),
			logger,
			appCfg.ChallengeSweepInterval,
		)
		challengeSweep.Start()
	}

	return nil
}
