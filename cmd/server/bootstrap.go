package main

import (
	"editorial-platform/internal/config"
	"editorial-platform/internal/store"
	"editorial-platform/pkg/database"

	"go.uber.org/zap"
)

func databaseOptions(db config.DB) *database.Options {
	return &database.Options{
		Driver:       db.Driver,
		Host:         db.Host,
		Port:         db.Port,
		User:         db.User,
		Password:     db.Password,
		Name:         db.Name,
		Charset:      db.Charset,
		DSN:          db.DSN,
		MaxOpenConns: db.MaxOpenConns,
		MaxIdleConns: db.MaxIdleConns,
		LogSQL:       db.LogSQL,
	}
}

// openStore 连接失败时返回 unavailable 状态的 Store，由调用方决定是否继续
func openStore(sugar *zap.SugaredLogger) *store.Store {
	s := store.Open(databaseOptions(cfg.Database), cfg.Database.OpTimeout(), sugar)
	if s.Available() {
		sugar.Infof("✅ 数据库连接成功 (%s)", s.Driver())
	}
	return s
}
