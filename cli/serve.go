package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blogem/forum-admin/authenticator"
	"github.com/blogem/forum-admin/controllers"
	"github.com/blogem/forum-admin/database"
	"github.com/blogem/forum-admin/repositories"
	"github.com/blogem/forum-admin/server"
	"github.com/blogem/forum-admin/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the admin panel web server",
		Long: `Serve loads the configuration, applies pending migrations and
starts the admin panel. It stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, flags, cmd)
		},
	}
}

func runServe(ctx context.Context, flags *globalFlags, cmd *cobra.Command) error {
	cfg, loc, err := loadConfig(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	db, err := database.InitializeDatabase(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, cfg.Admin, loc)

	var provider authenticator.Provider
	if cfg.OIDCEnabled() {
		provider, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDC.Domain,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			CallbackURL:  cfg.OIDC.CallbackURL,
		})
		if err != nil {
			return fmt.Errorf("initialize oidc provider: %w", err)
		}
	}

	ctrl := controllers.NewControllers(srvs, provider, loc)

	opts := server.Options{
		UseHTTPS:        cfg.UseHTTPS,
		SessionLifetime: cfg.SessionLifetime,
		TrackSecret:     cfg.TrackSecret,
	}
	if cfg.TrackSecret == "" {
		slog.Warn("TRACK_SECRET is not set; /api/track accepts page views from anyone")
	}
	if cfg.RecordPanelViews {
		opts.PanelRecorder = srvs.Access
	}

	router, err := server.NewRouter(ctrl, opts)
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("forum admin starting",
			"port", cfg.Port,
			"database", cfg.DatabasePath,
			"timezone", loc.String(),
			"sso", cfg.OIDCEnabled(),
		)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
