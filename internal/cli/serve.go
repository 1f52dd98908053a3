package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "moviebrowser/internal/config"
	intdb "moviebrowser/internal/db"
	router "moviebrowser/internal/http"
	"moviebrowser/internal/logging"
	"moviebrowser/internal/repositories"
	"moviebrowser/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the movies HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			setupLogging(env, cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, env, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "create the movies table if it is missing")
	return cmd
}

func runServer(ctx context.Context, env intconfig.Env, migrate bool) error {
	logger := logging.NewLogger("server")

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(ctx, env.DB)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()
	logger.Info().Str("host", env.DB.Host).Str("db", env.DB.Name).Msg("connected to MySQL")

	if migrate {
		created, err := intdb.EnsureMoviesSchema(ctx, db)
		if err != nil {
			return err
		}
		logger.Info().Bool("created", created).Msg("movies schema checked")
	}

	movies := services.NewMovieService(repositories.MovieRepository{DB: db})
	r := router.NewRouter(env, router.Deps{Movies: movies})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", env.AppAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
