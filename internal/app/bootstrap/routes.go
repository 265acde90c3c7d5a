// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	accountsfeature "github.com/syneroa/platform/internal/app/features/accounts"
	adminpanelfeature "github.com/syneroa/platform/internal/app/features/adminpanel"
	blogfeature "github.com/syneroa/platform/internal/app/features/blog"
	capstonesfeature "github.com/syneroa/platform/internal/app/features/capstones"
	challengesfeature "github.com/syneroa/platform/internal/app/features/challenges"
	contactfeature "github.com/syneroa/platform/internal/app/features/contact"
	coursesfeature "github.com/syneroa/platform/internal/app/features/courses"
	healthfeature "github.com/syneroa/platform/internal/app/features/health"
	ideasfeature "github.com/syneroa/platform/internal/app/features/ideas"
	partnersfeature "github.com/syneroa/platform/internal/app/features/partners"
	problemsfeature "github.com/syneroa/platform/internal/app/features/problems"
	programsfeature "github.com/syneroa/platform/internal/app/features/programs"
	solutionsfeature "github.com/syneroa/platform/internal/app/features/solutions"
	auditstore "github.com/syneroa/platform/internal/app/store/audit"
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
	"github.com/syneroa/platform/internal/app/system/filestore"
	"github.com/syneroa/platform/internal/app/system/payments"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. The router mounts one feature
// router per platform area, with session middleware applied globally
// so every handler can read the current user from the request context.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(
		appCfg.SessionKey,
		appCfg.SessionName,
		appCfg.SessionDomain,
		appCfg.SessionTTL,
		secure,
		logger,
	)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	az := &authz.Checker{AdminEmail: appCfg.AdminEmail}
	audit := auditlog.New(auditstore.New(deps.MongoDatabase), logger)

	files, err := buildFileStore(appCfg)
	if err != nil {
		logger.Error("file storage init failed", zap.Error(err))
		return nil, err
	}

	proc := buildPaymentProcessor(appCfg, logger)

	db := deps.MongoDatabase

	r := chi.NewRouter()

	// Global auth middleware: loads the session user into context so
	// handlers can call auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Locally stored solution PDFs (dev mode only; s3 serves its own).
	if appCfg.StorageType == "local" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	// Authentication
	accountsHandler := accountsfeature.NewHandler(db, sessionMgr, audit, logger)
	r.Mount("/auth", accountsfeature.Routes(accountsHandler))

	// Platform content
	challengesHandler := challengesfeature.NewHandler(db, audit, logger)
	r.Mount("/challenges", challengesfeature.Routes(challengesHandler, sessionMgr, az))

	solutionsHandler := solutionsfeature.NewHandler(db, files, audit, logger)
	r.Mount("/solutions", solutionsfeature.Routes(solutionsHandler, sessionMgr, az))

	problemsHandler := problemsfeature.NewHandler(db, audit, logger)
	r.Mount("/problems", problemsfeature.Routes(problemsHandler, sessionMgr, az))

	capstonesHandler := capstonesfeature.NewHandler(db, audit, logger)
	r.Mount("/capstones", capstonesfeature.Routes(capstonesHandler, sessionMgr, az))

	ideasHandler := ideasfeature.NewHandler(db, audit, logger)
	r.Mount("/ideas", ideasfeature.Routes(ideasHandler, sessionMgr, az))

	blogHandler := blogfeature.NewHandler(db, audit, logger)
	r.Mount("/blog", blogfeature.Routes(blogHandler, sessionMgr, az))

	programsHandler := programsfeature.NewHandler(db, audit, logger)
	r.Mount("/programs", programsfeature.Routes(programsHandler, sessionMgr, az))

	partnersHandler := partnersfeature.NewHandler(db, audit, logger)
	r.Mount("/partners", partnersfeature.Routes(partnersHandler, sessionMgr, az))

	contactHandler := contactfeature.NewHandler(db, audit, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler, sessionMgr, az))

	// Courses and enrollment
	coursesHandler := coursesfeature.NewHandler(db, proc, audit, logger)
	r.Mount("/courses", coursesfeature.Routes(coursesHandler, sessionMgr, az))

	// Admin panel
	adminHandler := adminpanelfeature.NewHandler(db, audit, logger)
	r.Mount("/admin", adminpanelfeature.Routes(adminHandler, sessionMgr, az))

	return r, nil
}

// buildFileStore picks the attachment backend from config.
func buildFileStore(appCfg AppConfig) (filestore.Store, error) {
	if appCfg.StorageType == "s3" {
		return filestore.NewMinIOStore(filestore.MinIOConfig{
			Endpoint:      appCfg.S3Endpoint,
			AccessKey:     appCfg.S3AccessKey,
			SecretKey:     appCfg.S3SecretKey,
			UseSSL:        appCfg.S3UseSSL,
			Bucket:        appCfg.S3Bucket,
			PublicBaseURL: appCfg.S3PublicURL,
		})
	}
	return filestore.NewLocalStore(appCfg.StorageLocalPath, appCfg.StorageLocalURL)
}

// buildPaymentProcessor returns Stripe when a secret key is configured
// and the in-memory fake otherwise.
func buildPaymentProcessor(appCfg AppConfig, logger *zap.Logger) payments.Processor {
	if appCfg.StripeSecretKey != "" {
		return payments.NewStripeProcessor(appCfg.StripeSecretKey, logger)
	}
	logger.Warn("no stripe secret key configured; using the fake payment processor")
	return payments.NewFakeProcessor()
}
