package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/application/suggest"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/catalog"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/infrastructure/postgres"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/logger"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/tracing"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/handlers"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/router"
)

var version = "dev"

// App holds all dependencies for the service
type App struct {
	Config  *config.Config
	Server  *http.Server
	Catalog *catalog.Catalog
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.InitTracing(ctx, tracing.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: version,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("tracing init failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(sctx)
	}()

	var db *sql.DB
	if cfg.CatalogSource == config.SourcePostgres {
		db, err = openDB(ctx, cfg.DatabaseURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("db init failed")
		}
	}

	src, err := newSource(cfg, db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("catalog source init failed")
	}

	cat, err := loadCatalog(ctx, src)
	// the catalog is immutable once built, so the db is no longer needed
	if db != nil {
		_ = db.Close()
	}
	if err != nil {
		zlog.Fatal().Err(err).Msg("catalog load failed")
	}

	app := NewApp(cfg, cat)

	zlog.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("listening")
	if err := app.Run(ctx); err != nil {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
	zlog.Info().Msg("server stopped")
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if u, err := url.Parse(dsn); err == nil {
		zlog.Info().
			Str("db_user", u.User.Username()).
			Str("db_host", u.Host).
			Str("db_db", u.Path).
			Msg("db config loaded")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newSource(cfg *config.Config, db *sql.DB) (catalog.Source, error) {
	switch cfg.CatalogSource {
	case config.SourceCSV:
		return catalog.FileSource{Path: cfg.CatalogPath}, nil
	case config.SourcePostgres:
		if db == nil {
			return nil, errors.New("postgres catalog source needs a database")
		}
		return postgres.NewCatalogSource(db, cfg.CatalogTable)
	default:
		return catalog.EmbeddedSource{}, nil
	}
}

func loadCatalog(ctx context.Context, src catalog.Source) (*catalog.Catalog, error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.load")
	defer span.End()

	start := time.Now()
	cat, err := catalog.Build(ctx, src)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	ev := zlog.Info()
	if cat.Len() == 0 {
		ev = zlog.Warn()
	}
	ev.Str("source", src.Name()).
		Int("cities", cat.Len()).
		Dur("took", time.Since(start)).
		Msg("catalog loaded")
	return cat, nil
}

func NewApp(cfg *config.Config, cat *catalog.Catalog) *App {
	// 1) Application
	svc := suggest.New(cat)

	// 2) Transport
	s := handlers.NewSuggestionsHandler(svc)
	z := handlers.NewHealthHandler(handlers.CatalogChecker(svc.Size))

	// 3) Router
	httpHandler := router.New(cfg, logger.Log, s, z)

	// 4) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:  cfg,
		Server:  srv,
		Catalog: cat,
	}
}

// Run serves until ctx is done, then drains in-flight requests within
// ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
		defer cancel()
		zlog.Info().Msg("shutting down")
		return a.Server.Shutdown(sctx)
	})

	return g.Wait()
}
