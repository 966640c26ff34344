package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"AllianceSite/internal/config"
	"AllianceSite/internal/domain"
	"AllianceSite/internal/infrastructure/markdown"
	"AllianceSite/internal/infrastructure/scheduler"
	"AllianceSite/internal/infrastructure/wordpress"
	"AllianceSite/internal/logging"
	"AllianceSite/internal/resource"
	"AllianceSite/internal/usecase"
	"AllianceSite/internal/web"
)

const shutdownTimeout = 10 * time.Second

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	client   *wordpress.Client
	server   *web.Server
	reprober *usecase.Reprober
}

// New builds the application from configuration.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	client := wordpress.NewClient(cfg.WordPress, baseLogger.With("component", "wordpress"))

	pages, err := markdown.New()
	if err != nil {
		return nil, fmt.Errorf("load built-in pages: %w", err)
	}

	site := usecase.NewSite(usecase.SiteDeps{
		Content:     client,
		Pages:       pages,
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		AdminURL:    cfg.WordPress.AdminURL,
		MenuID:      cfg.WordPress.MenuID,
		Logger:      baseLogger.With("component", "site"),
	})

	server, err := web.NewServer(web.Deps{
		Site:      site,
		Resources: resource.NewContentRegistry(client),
		Tester:    client,
		Logger:    baseLogger.With("component", "http"),
	})
	if err != nil {
		return nil, fmt.Errorf("build http server: %w", err)
	}

	var reprober *usecase.Reprober
	if cfg.WordPress.ReprobeInterval > 0 {
		reprober = usecase.NewReprober(
			scheduler.NewTickerScheduler(cfg.WordPress.ReprobeInterval),
			client,
			baseLogger.With("component", "reprobe"),
		)
	}

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		client:   client,
		server:   server,
		reprober: reprober,
	}, nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (a *Application) Handler() http.Handler {
	return a.server
}

// Probe runs a one-off connection test against the CMS.
func (a *Application) Probe(ctx context.Context) (domain.ConnectionReport, int) {
	return a.client.TestConnection(ctx)
}

// Run listens on the configured address until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.cfg.Server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves HTTP on ln and shuts down gracefully once ctx is cancelled.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.server,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	if a.reprober != nil {
		if err := a.reprober.Start(ctx); err != nil {
			return fmt.Errorf("start reprobe scheduler: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", ln.Addr().String(), "wordpress_api", a.client.BaseURL())
		errCh <- srv.Serve(ln)
	}()

	var serveErr error
	select {
	case err := <-errCh:
		serveErr = err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if a.reprober != nil {
		if err := a.reprober.Stop(shutdownCtx); err != nil {
			a.logger.Warn("stop reprobe scheduler", "error", err)
		}
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", serveErr)
	}

	a.logger.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
