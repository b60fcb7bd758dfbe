package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cms-api/config"
	"cms-api/handlers"
	"cms-api/helper"
	"cms-api/mediastore"
	"cms-api/repositories"
	"cms-api/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Initialize database
		db, err := config.InitDB(cfg.Database)
		if err != nil {
			return err
		}
		defer config.CloseDB(db)

		if err := config.AutoMigrate(db); err != nil {
			log.Error("failed to apply migrations", "error", err)
		}

		media, err := mediastore.New(ctx, cfg.Media)
		if err != nil {
			return err
		}

		h, err := helper.NewHTTPHelper()
		if err != nil {
			return err
		}

		// Initialize repositories
		authorRepo := repositories.NewAuthorRepository(db)
		articleRepo := repositories.NewArticleRepository(db)
		tagRepo := repositories.NewTagRepository(db)

		// Initialize services
		articleService := services.NewArticleService(articleRepo, authorRepo, media, log)
		authorService := services.NewAuthorService(authorRepo, media, log)
		tagService := services.NewTagService(tagRepo, log)

		if cfg.App.Env == "production" {
			gin.SetMode(gin.ReleaseMode)
		}
		router := handlers.NewRouter(log, handlers.Handlers{
			Article: handlers.NewArticleHandler(articleService, h),
			Author:  handlers.NewAuthorHandler(authorService, h),
			Tag:     handlers.NewTagHandler(tagService, h),
		})

		srv := &http.Server{
			Addr:              ":" + cfg.App.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server starting", "port", cfg.App.Port, "media", cfg.Media.Driver, "db", cfg.Database.Driver)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if closer, ok := media.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil
	},
}
