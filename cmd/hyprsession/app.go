package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/config"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/logging"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/monitoring"
)

// app holds the wiring shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *logging.Logger
	metrics *monitoring.Metrics
	stdout  io.Writer
	stderr  io.Writer

	metricsServer *http.Server
}

func newApp(cfg *config.Config, stdout, stderr io.Writer) (*app, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		metrics: monitoring.NewMetrics(),
		stdout:  stdout,
		stderr:  stderr,
	}
	if cfg.Metrics.Addr != "" {
		if err := a.serveMetrics(cfg.Metrics.Addr); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *app) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	a.metricsServer = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := a.metricsServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	a.logger.Info("serving metrics", zap.String("addr", ln.Addr().String()))
	return nil
}

func (a *app) close() {
	if a.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = a.metricsServer.Shutdown(ctx)
	}
	_ = a.logger.Sync()
}

// endpoint resolves the compositor sockets once per command.
func (a *app) endpoint() (hypr.Endpoint, error) {
	return hypr.NewEndpoint(a.cfg.Hypr.RuntimeDir, a.cfg.Hypr.Signature)
}

func (a *app) client() (*hypr.Client, error) {
	ep, err := a.endpoint()
	if err != nil {
		return nil, err
	}
	return hypr.NewClient(ep).
		WithTimeout(a.cfg.Hypr.Timeout).
		WithLogger(a.logger).
		WithMetrics(a.metrics), nil
}

func (a *app) dispatchCommand(ctx context.Context, name string, args []string) error {
	switch name {
	case "save":
		return a.save(ctx, args)
	case "restore":
		return a.restore(ctx, args)
	case "listen":
		return a.listen(ctx, args)
	case "query":
		return a.query(ctx, args)
	case "dispatch":
		return a.dispatch(ctx, args)
	}
	fmt.Fprintf(a.stderr, "hyprsession: unknown command %q\n", name)
	return errUsage
}
