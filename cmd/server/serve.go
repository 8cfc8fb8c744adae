package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "editorial-platform/docs"
	"editorial-platform/internal/handler"
	"editorial-platform/internal/middleware"
	"editorial-platform/internal/model"
	"editorial-platform/internal/redirect"
	"editorial-platform/internal/shortcode"
	"editorial-platform/internal/store"
	"editorial-platform/internal/tracker"
	"editorial-platform/pkg/logger"
	"editorial-platform/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	sugaredLogger := zap.S()

	s := openStore(sugaredLogger)
	defer func() {
		if err := s.Close(); err != nil {
			sugaredLogger.Errorf("关闭数据库连接失败: %v", err)
		}
	}()
	if s.Available() {
		if err := s.Migrate(parent); err != nil {
			sugaredLogger.Errorf("数据库迁移失败: %v", err)
		} else {
			sugaredLogger.Info("✅ 数据库迁移成功")
		}
	}

	var links redirect.LinkSource = redirect.NewStoreLinks(s)
	rdb, err := redis.NewRedisClient(&redis.Options{
		Host: cfg.Cache.Host, Port: cfg.Cache.Port, Password: cfg.Cache.Password, DB: cfg.Cache.DB,
	})
	switch {
	case err != nil:
		sugaredLogger.Warnf("缓存连接失败，直接读取数据库: %v", err)
	case rdb != nil:
		defer func() {
			if err := rdb.Close(); err != nil {
				sugaredLogger.Errorf("关闭 Redis 连接失败: %v", err)
			}
		}()
		links = redirect.NewCachedLinks(rdb, links, cfg.Cache.TTL(), sugaredLogger)
		sugaredLogger.Info("✅ 缓存连接成功")
	}

	recorder := tracker.NewRecorder(s, cfg.Tracker.BufferSize, cfg.Tracker.WorkerCount, cfg.Database.OpTimeout(), sugaredLogger)
	recorder.Start()
	defer recorder.Stop()
	sugaredLogger.Infof("✅ 点击记录器已启动 (workers=%d, buffer=%d)", cfg.Tracker.WorkerCount, cfg.Tracker.BufferSize)

	engine := redirect.NewEngine(links, recorder, sugaredLogger)
	codes := shortcode.NewGenerator(func(ctx context.Context, code string) (bool, error) {
		return s.Exists(ctx, model.LinkCollection, store.Filter{}.Where(store.Eq("slug", code)))
	}, sugaredLogger)

	if cfg.App.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZapRecovery(logger.Logger, true))
	router.Use(middleware.GinZapLogger(logger.Logger))
	router.Use(middleware.RateLimit(cfg.RateLimit))

	handler.RegisterRoutes(router,
		handler.NewSystemHandler(s, cfg.Database.DSN != "", sugaredLogger),
		handler.NewContentHandler(s, sugaredLogger),
		handler.NewLinkHandler(s, links, engine, codes, cfg.Redirect.Mode, sugaredLogger),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		sugaredLogger.Infof("🚀 服务启动成功, 访问 http://localhost:%d (跳转模式: %s)", cfg.Server.Port, cfg.Redirect.Mode)
		sugaredLogger.Infof("📚 Swagger 文档地址: http://localhost:%d/swagger/index.html", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("服务启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	sugaredLogger.Info("收到退出信号，正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务关闭失败: %w", err)
	}
	sugaredLogger.Info("✅ 服务已停止")
	return nil
}
