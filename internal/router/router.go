package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "shelter-care/docs"

	mem "shelter-care/internal/adapters/storage/memory"
	pg "shelter-care/internal/adapters/storage/postgres"
	"shelter-care/internal/domain/animals"
	"shelter-care/internal/domain/cascade"
	"shelter-care/internal/domain/health"
	"shelter-care/internal/domain/medication"
	"shelter-care/internal/domain/visits"
	"shelter-care/internal/middleware"
	"shelter-care/internal/platform/clock"
	"shelter-care/internal/platform/logger"
	"shelter-care/internal/ports/auth"
	"shelter-care/internal/ports/images"
	"shelter-care/internal/ports/owners"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB           *sql.DB
	StoreTimeout time.Duration

	Logger logger.Logger
	Clock  *clock.Provider
	Owners owners.Directory

	// Images nil => los registros con foto se rechazan.
	Images images.Store
	// UploadDir se sirve en /uploads si no está vacío.
	UploadDir string

	RateLimiter *middleware.RateLimiter // nil => sin límite
}

type repos struct {
	animals    animals.Repository
	health     health.Repository
	visits     visits.Repository
	medication medication.Repository
	uow        cascade.UnitOfWork
}

func buildRepos(opts Options) repos {
	if opts.DB != nil {
		db := pg.NewDB(opts.DB, opts.StoreTimeout)
		return repos{
			animals:    pg.NewAnimalsRepo(db),
			health:     pg.NewHealthRepo(db),
			visits:     pg.NewVisitsRepo(db),
			medication: pg.NewMedicationRepo(db),
			uow:        db,
		}
	}
	store := mem.NewStore()
	return repos{
		animals:    mem.NewAnimalRepo(store),
		health:     mem.NewHealthRepo(store),
		visits:     mem.NewVisitRepo(store),
		medication: mem.NewMedicationRepo(store),
		uow:        store,
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.NewProvider(clock.Options{Logger: log})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.RateLimit(opts.RateLimiter))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	clock.RegisterRoutes(r, clk)

	if opts.UploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir))))
	}

	rp := buildRepos(opts)

	// Services por módulo
	animalsSvc := animals.NewService(rp.animals, opts.Owners)
	healthSvc := health.NewService(rp.health, animalsSvc)
	visitsSvc := visits.NewService(rp.visits, animalsSvc)
	medSvc := medication.NewService(rp.medication, animalsSvc, visitsSvc, clk)
	evaluator := medication.NewEvaluator(rp.medication, clk)
	coordinator := cascade.NewCoordinator(rp.uow, log)

	// Rutas por módulo; todas requieren usuario autenticado.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		animals.RegisterRoutes(r, animalsSvc, coordinator, opts.Images)
		health.RegisterRoutes(r, healthSvc)
		visits.RegisterRoutes(r, visitsSvc)
		medication.RegisterRoutes(r, medSvc, evaluator)
	})

	return r
}
