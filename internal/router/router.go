package router

import (
	"database/sql"
	"net/http"

	_ "homestead-architect/docs"
	mem "homestead-architect/internal/adapters/storage/memory"
	pg "homestead-architect/internal/adapters/storage/postgres"
	"homestead-architect/internal/domain/animals"
	"homestead-architect/internal/domain/breeding"
	"homestead-architect/internal/domain/finance"
	"homestead-architect/internal/domain/infrastructure"
	"homestead-architect/internal/domain/inventory"
	"homestead-architect/internal/domain/planning"
	"homestead-architect/internal/domain/profiles"
	"homestead-architect/internal/domain/properties"
	"homestead-architect/internal/domain/tasks"
	"homestead-architect/internal/middleware"
	"homestead-architect/internal/platform/logger"
	"homestead-architect/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger       logger.Logger
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: nil desactiva el rate limit.
	RateLimiter *middleware.RateLimiter
}

type repos struct {
	properties     properties.Repository
	animals        animals.Repository
	breeding       breeding.Repository
	inventory      inventory.Repository
	categories     finance.CategoryRepository
	transactions   finance.TransactionRepository
	infrastructure infrastructure.Repository
	tasks          tasks.Repository
	profiles       profiles.Repository
}

func postgresRepos(db *sql.DB) repos {
	return repos{
		properties:     pg.NewPropertiesRepo(db),
		animals:        pg.NewAnimalsRepo(db),
		breeding:       pg.NewBreedingRepo(db),
		inventory:      pg.NewInventoryRepo(db),
		categories:     pg.NewFinancialCategoriesRepo(db),
		transactions:   pg.NewTransactionsRepo(db),
		infrastructure: pg.NewInfrastructureRepo(db),
		tasks:          pg.NewTasksRepo(db),
		profiles:       pg.NewProfilesRepo(db),
	}
}

func memoryRepos() repos {
	return repos{
		properties:     mem.NewPropertyRepo(),
		animals:        mem.NewAnimalRepo(),
		breeding:       mem.NewBreedingRepo(),
		inventory:      mem.NewInventoryRepo(),
		categories:     mem.NewFinancialCategoryRepo(),
		transactions:   mem.NewTransactionRepo(),
		infrastructure: mem.NewInfrastructureRepo(),
		tasks:          mem.NewTaskRepo(),
		profiles:       mem.NewProfileRepo(),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()
	useBase(r, log)

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	// después de AuthContext: el limiter usa el user id como clave cuando existe
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var rp repos
	if opts.DB != nil {
		rp = postgresRepos(opts.DB)
	} else {
		rp = memoryRepos()
	}

	// Services por módulo
	propertiesSvc := properties.NewService(rp.properties)
	animalsSvc := animals.NewService(rp.animals, propertiesSvc)
	breedingSvc := breeding.NewService(rp.breeding, animalsSvc, propertiesSvc, log)
	inventorySvc := inventory.NewService(rp.inventory, propertiesSvc)
	financeSvc := finance.NewService(rp.categories, rp.transactions, propertiesSvc)
	infraSvc := infrastructure.NewService(rp.infrastructure, propertiesSvc)
	tasksSvc := tasks.NewService(rp.tasks, propertiesSvc)
	profilesSvc := profiles.NewService(rp.profiles)
	planningSvc := planning.NewService(propertiesSvc, tasksSvc, infraSvc)

	// Rutas por módulo; todas requieren usuario
	r.Group(func(ar chi.Router) {
		ar.Use(middleware.RequireUser)

		properties.RegisterRoutes(ar, propertiesSvc, log)
		animals.RegisterRoutes(ar, animalsSvc, log)
		breeding.RegisterRoutes(ar, breedingSvc, log)
		inventory.RegisterRoutes(ar, inventorySvc, log)
		finance.RegisterRoutes(ar, financeSvc, log)
		infrastructure.RegisterRoutes(ar, infraSvc, log)
		tasks.RegisterRoutes(ar, tasksSvc, log)
		profiles.RegisterRoutes(ar, profilesSvc, log)
		planning.RegisterRoutes(ar, planningSvc, log)
	})

	return r
}

// useBase arma la cadena común. Observe va por fuera de Recover: un panic
// termina como 500 y igual queda contado y logueado.
func useBase(r chi.Router, log logger.Logger) {
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.EchoRequestID)
	r.Use(middleware.Observe(log))
	r.Use(middleware.Recover(log))
}
