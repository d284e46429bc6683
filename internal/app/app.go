package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/yldraft/olympic-draft/internal/config"
	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/domain/result"
	"github.com/yldraft/olympic-draft/internal/infrastructure/account/identity"
	"github.com/yldraft/olympic-draft/internal/infrastructure/repository/memory"
	"github.com/yldraft/olympic-draft/internal/infrastructure/repository/postgres"
	"github.com/yldraft/olympic-draft/internal/interfaces/httpapi"
	"github.com/yldraft/olympic-draft/internal/platform/cache"
	idgen "github.com/yldraft/olympic-draft/internal/platform/id"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
	"github.com/yldraft/olympic-draft/internal/platform/resilience"
	"github.com/yldraft/olympic-draft/internal/usecase"
)

type repositories struct {
	leagues league.Repository
	events  event.Repository
	picks   draft.PickRepository
	results result.Repository
}

// App owns the HTTP server and the resources it was built on.
type App struct {
	Server *http.Server
	db     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	leagueService := usecase.NewLeagueService(repos.leagues, repos.events, nil, idgen.NewRandomGenerator(), logger)
	draftService := usecase.NewDraftService(repos.leagues, repos.events, repos.picks, logger)
	eventService := usecase.NewEventService(repos.events, repos.leagues, repos.picks, repos.results, store)
	resultService := usecase.NewResultService(repos.leagues, repos.events, repos.results, logger)
	autoService := usecase.NewAutoAssignService(repos.leagues, repos.events, repos.picks, logger, cfg.AutoAssignWorkers)
	catalogService := usecase.NewCatalogService(repos.events, eventService, logger, cfg.CatalogWorkers)

	identityClient := identity.NewClient(identity.ClientConfig{
		BaseURL:        cfg.IdentityBaseURL,
		IntrospectPath: cfg.IdentityIntrospectPath,
		Timeout:        cfg.IdentityTimeout,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.IdentityCircuitEnabled,
			FailureThreshold: cfg.IdentityCircuitFailureCount,
			OpenTimeout:      cfg.IdentityCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.IdentityCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(
		leagueService,
		draftService,
		eventService,
		resultService,
		autoService,
		catalogService,
		logger,
	)
	router := httpapi.NewRouter(handler, identityClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db, logger: logger}, nil
}

// Close releases resources owned by the app. The HTTP server is shut down
// separately by the caller.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		var events []event.Event
		var entries []event.Entry
		if cfg.SeedEnabled {
			events = memory.SeedEvents()
			entries = memory.SeedEntries()
		}
		leagueRepo := memory.NewLeagueRepository(nil)
		pickRepo := memory.NewPickRepository()
		repos := repositories{
			leagues: leagueRepo,
			events:  memory.NewEventRepository(events, entries, leagueRepo),
			picks:   pickRepo,
			results: memory.NewResultRepository(leagueRepo, pickRepo),
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "seeded", cfg.SeedEnabled)
		return repos, nil, nil

	case config.StoragePostgres:
		dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err := otelsqlx.Open("postgres", dbURL,
			otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open postgres pool: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("ping postgres: %w", err)
		}
		if cfg.SeedEnabled {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
			}
		}
		repos := repositories{
			leagues: postgres.NewLeagueRepository(db),
			events:  postgres.NewEventRepository(db),
			picks:   postgres.NewPickRepository(db),
			results: postgres.NewResultRepository(db),
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db", dbNameFromURL(cfg.DBURL))
		return repos, db, nil

	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
