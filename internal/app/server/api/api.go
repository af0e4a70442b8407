// Catalogue of registration records of the Parlement de Paris.
//
// GET  /api/v1/health            # Liveness (public)
// POST /user/register            # Registration (public)
// POST /user/login               # Login (public)
// POST /user/logout              # Logout (auth)
// GET  /api/records              # List/browse/filter records (public)
// GET  /api/records/{id}         # One record (public)
// GET  /api/records/chamber      # Also registered at the Chambre des comptes (public)
// GET  /api/records/no-chamber   # Not registered there (public)
// GET  /api/search               # Keyword search across all attributes (public)
// POST /api/records              # Add a record (auth)
// PUT  /api/records/{id}         # Modify a record (auth)
// DELETE /api/records/{id}       # Delete a record (auth)
// GET  /api/authorship           # Audit trail (auth)
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authorshipAPI "registre/internal/app/server/api/http/authorship"
	healthAPI "registre/internal/app/server/api/http/health"
	"registre/internal/app/server/api/http/middleware"
	"registre/internal/app/server/api/http/middleware/auth"
	"registre/internal/app/server/api/http/middleware/logger"
	recordAPI "registre/internal/app/server/api/http/record"
	userAPI "registre/internal/app/server/api/http/user"
	"registre/internal/domain/authorship"
	"registre/internal/domain/record"
	"registre/internal/domain/session"
	"registre/internal/domain/user"
	"registre/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Record     *recordAPI.Handler
	Authorship *authorshipAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Registre API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Record.SetupRoutes(API)
	h.Authorship.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	recordRepo := postgres.NewRecordRepository(pool, log)
	recordService := record.NewService(recordRepo, log)
	middlewares.Add(loggerMW.Middleware())
	publicMW := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	recordHandler := recordAPI.NewHandler(recordService, log, publicMW, middlewares.GetAllAndClear())

	authorshipRepo := postgres.NewAuthorshipRepository(pool, log)
	authorshipService := authorship.NewService(authorshipRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	authorshipHandler := authorshipAPI.NewHandler(authorshipService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		User:       userHandler,
		Record:     recordHandler,
		Authorship: authorshipHandler,
	}
}
