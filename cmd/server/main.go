package main

import (
	"context"
	"fmt"
	"os"

	"editorial-platform/internal/config"
	"editorial-platform/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Editorial + Shopping API
// @version         1.0
// @description     商品、文章、专题、短链跳转与点击归因服务
// @host            localhost:8080
// @BasePath        /

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "editorial",
	Short: "Editorial + Shopping 内容与导购服务",
	Long: `商品、文章、专题、订阅与心愿单的 CRUD 接口，
以及带 UTM 补全与点击记录的短链跳转。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			logger.InitLogger(logger.DefaultOptions())
			return fmt.Errorf("配置加载失败: %w", err)
		}
		logger.InitLogger(logger.Options{
			Level:      cfg.Log.Level,
			Filename:   cfg.Log.Filename,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
			Console:    cfg.Log.Console,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger.Logger != nil {
			// stdout 上的 Sync 在部分平台会返回 EINVAL，忽略
			_ = logger.Logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认 ./configs/config.yaml）")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, summaryCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if logger.Logger != nil {
			zap.S().Errorf("命令执行失败: %v", err)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
