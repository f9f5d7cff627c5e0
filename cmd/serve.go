package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/CYSTCloud/TP/controllers"
	"github.com/CYSTCloud/TP/global"
	"github.com/CYSTCloud/TP/log"
	"github.com/CYSTCloud/TP/models"
	"github.com/CYSTCloud/TP/provider"
	"github.com/CYSTCloud/TP/router"
	"github.com/CYSTCloud/TP/templates"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()
	// 没有密钥时启动即失败, 不发送未认证的请求
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.App.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)
	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	client, err := provider.New(ctx, cfg.Provider)
	if err != nil {
		return fmt.Errorf("create translation provider: %w", err)
	}
	if closer, ok := client.(io.Closer); ok {
		defer closer.Close()
	}

	tmpl, err := templates.Load()
	if err != nil {
		// 首页会返回 500, 其余接口照常工作
		log.L().Error("load templates error", zap.Error(err))
	}

	store := models.NewTranslationStore(db)
	r := router.SetupRouter(router.Options{
		AppName:      cfg.App.Name,
		Translations: controllers.NewTranslationController(store, client, cfg.Provider.Timeout, cfg.Database.WriteTimeout),
		Health:       store,
		Templates:    tmpl,
		DocsEnabled:  cfg.Docs.Enabled,
		AdminURL:     cfg.Admin.URL,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	monitor := log.NewMonitor(ctx)
	monitor.StartMonitor()
	defer monitor.StopMonitor()

	errCh := make(chan error, 1)
	go func() {
		log.L().Info("server listening",
			zap.String("addr", server.Addr),
			zap.String("provider", client.Name()),
			zap.String("database", cfg.Database.Driver),
			zap.Bool("docs", cfg.Docs.Enabled))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.L().Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), global.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.L().Error("graceful shutdown failed", zap.Error(err))
		return server.Close()
	}
	return nil
}
