package cmd

import (
	"fmt"
	"os"

	"github.com/CYSTCloud/TP/config"
	"github.com/CYSTCloud/TP/global"
	"github.com/CYSTCloud/TP/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "polyteacher",
	Short: "Polyteacher translation API",
	Long: `A small web backend that translates text through an external provider
and keeps every translation in a relational store.

Run without a subcommand to start the HTTP server.`,
	Version:       global.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config/config.yml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, listCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig 读取配置并初始化日志
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := log.Init(cfg.App.Production, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, err
	}
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.L().Error("database connection failed",
			zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return nil, err
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.L().Warn("close database error", zap.Error(err))
	}
}
