// Package cli wires configuration, logging, content and the HTTP server into
// the portfolio command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/devstephenke-sys/portfolio/internal/clock"
	"github.com/devstephenke-sys/portfolio/internal/config"
	"github.com/devstephenke-sys/portfolio/internal/content"
	"github.com/devstephenke-sys/portfolio/internal/logging"
	"github.com/devstephenke-sys/portfolio/internal/site"
)

// NewRootCmd returns the portfolio command. Running it without a subcommand
// serves the site.
func NewRootCmd() *cobra.Command {
	var contentFile string

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio web server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), contentFile)
		},
	}
	root.PersistentFlags().StringVar(&contentFile, "content", "", "portfolio YAML file (overrides CONTENT_FILE)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), contentFile)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the portfolio content and print warnings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := contentFile
			if path == "" {
				var err error
				if path, err = config.LoadContentFile(); err != nil {
					return err
				}
			}
			return runCheck(cmd.OutOrStdout(), path)
		},
	})

	return root
}

func runCheck(out io.Writer, path string) error {
	p, err := content.Load(path)
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "embedded portfolio"
	}
	fmt.Fprintf(out, "%s: ok (%d projects, %d skill groups, %d experience entries)\n",
		source, len(p.Projects), len(p.SkillGroups), len(p.Experience))
	for _, w := range p.Warnings() {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	return nil
}

func runServe(ctx context.Context, contentFile string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if contentFile != "" {
		cfg.ContentFile = contentFile
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	portfolio, err := content.Load(cfg.ContentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	for _, w := range portfolio.Warnings() {
		logger.Warn("content", zap.String("warning", w))
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	handler, err := site.New(site.Options{
		Portfolio:     portfolio,
		Clock:         clock.New(loc, clock.DefaultLayout),
		ClockInterval: cfg.ClockInterval,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("init site: %w", err)
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, srv, ln, cfg.ShutdownTimeout, logger)
}

// serve runs srv on ln until ctx is cancelled, then drains it within timeout.
// Open clock streams are bound to request contexts, which Shutdown does not
// cancel, so the base context is cancelled as part of shutdown.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *zap.Logger) error {
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	srv.BaseContext = func(net.Listener) context.Context { return baseCtx }

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		cancelBase()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
