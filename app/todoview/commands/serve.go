package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jrazmi/todoview/app/todoview/api"
	"github.com/jrazmi/todoview/app/todoview/config"
	"github.com/jrazmi/todoview/bridge/scaffolding/mid"
	"github.com/jrazmi/todoview/infrastructure/web"
	"github.com/jrazmi/todoview/sdk/logger"
	"github.com/jrazmi/todoview/sdk/telemetry"
	"github.com/spf13/cobra"
)

func newServeCommand(build string, flags *rootFlags) *cobra.Command {
	var (
		port            string
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task page and the JSON api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}

			seed, err := flags.seed()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var opts []web.ServerOption
			if port != "" {
				opts = append(opts, web.WithPort(port))
			}
			if shutdownTimeout > 0 {
				opts = append(opts, web.WithShutdownTimeout(shutdownTimeout))
			}

			if err := run(ctx, log, build, seed, opts...); err != nil {
				log.ErrorContext(ctx, "startup", "err", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen address (default $TODOVIEW_PORT or :8080)")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Grace period for in-flight requests (default $TODOVIEW_SHUTDOWN_TIMEOUT or 20s)")

	return cmd
}

func run(ctx context.Context, log *logger.Logger, build string, seed config.Seed, serverOpts ...web.ServerOption) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	repo, count, err := openRepository(ctx, log, seed)
	if err != nil {
		return err
	}
	// END REPOSITORIES //

	webCfg, err := web.LoadServerConfig(config.AppName)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	siteCfg := config.Todoview{
		Build:     build,
		Logger:    log,
		Telemetry: telemetry.NewTelemetry(),
		Repositories: config.Repositories{
			Todo: repo,
		},
		TaskCount: count,
	}

	handler, err := webHandler(siteCfg)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	opts := []web.ServerOption{
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, logger.LevelError)),
	}
	server := web.NewWebServer(webCfg, append(opts, serverOpts...)...)

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.ErrorContextf(ctx, "graceful shutdown failed after %s, closing", server.Config.ShutdownTimeout)
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.Todoview) (http.Handler, error) {
	wh, err := web.NewWebHandlerFromEnv(config.AppName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithDefaultHeaders(map[string]string{"X-Content-Type-Options": "nosniff"}),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger, cfg.Telemetry), // Request logging
			mid.Errors(cfg.Logger),                // Error handling
			mid.Metrics(),                         // Metrics collection
			mid.Panics(),                          // Panic recovery
		),
	)
	if err != nil {
		return nil, err
	}

	if err := api.AddHandlers(wh, cfg); err != nil {
		return nil, err
	}

	return wh, nil
}
