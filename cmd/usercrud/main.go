package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/matthiasBT/usercrud/internal/infra/config"
	"github.com/matthiasBT/usercrud/internal/infra/logging"
	"github.com/matthiasBT/usercrud/internal/infra/metrics"
	"github.com/matthiasBT/usercrud/internal/infra/migrations"
	"github.com/matthiasBT/usercrud/internal/server/adapters"
	"github.com/matthiasBT/usercrud/internal/server/adapters/repositories"
	"github.com/matthiasBT/usercrud/internal/server/usecases"
)

func setupServer(logger logging.ILogger, recorder *metrics.Recorder, controller *usecases.BaseController) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(logger))
	r.Use(recorder.Middleware)
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/metrics", recorder.Handler())
	r.Mount("/", controller.Route())
	return r
}

func main() {
	conf, err := config.Read(os.Args[1:])
	if err != nil {
		logging.SetupLogger(config.DefaultLogLevel).Fatal(err)
	}
	logger := logging.SetupLogger(conf.LogLevel)
	logger.Infof(
		"Config. Server address: %s. Max connections: %d. Log level: %s",
		conf.ServerAddr,
		conf.MaxConns,
		conf.LogLevel,
	)
	db, err := sqlx.Open("pgx", conf.DatabaseDSN)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()
	if err := migrations.Migrate(logger, db); err != nil {
		logger.Fatal(err)
	}
	storage := adapters.NewPGStorage(logger, db, conf.MaxConns)
	controller := usecases.NewBaseController(logger, storage, repositories.NewPGUserRepo(logger))
	r := setupServer(logger, metrics.NewRecorder(), controller)

	ln, err := net.Listen("tcp", conf.ServerAddr)
	if err != nil {
		logger.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := &http.Server{Handler: r}
	if err := serve(ctx, logger, srv, ln, conf.ShutdownTimeout); err != nil {
		logger.Fatal(err)
	}
	logger.Infoln("Server stopped")
}

// serve blocks until ctx is done, then waits up to timeout for in-flight requests to finish.
func serve(ctx context.Context, logger logging.ILogger, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("Launching the server at %s", ln.Addr())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	logger.Infoln("Shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
		return err
	}
	return nil
}
