package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	cgosqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options 数据库连接参数
type Options struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	Charset      string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	LogSQL       bool
}

// MySQLDSN 按连接参数拼接 MySQL DSN
func MySQLDSN(opts *Options) string {
	charset := opts.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		opts.User, opts.Password, opts.Host, opts.Port, opts.Name, charset)
}

// Dialector 根据驱动名选择 gorm 方言
//
// sqlite 使用纯 Go 实现，sqlite3 使用 cgo 版本。
func Dialector(opts *Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case "", "mysql":
		dsn := opts.DSN
		if dsn == "" {
			dsn = MySQLDSN(opts)
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(sqliteDSN(opts)), nil
	case "sqlite3":
		return cgosqlite.Open(sqliteDSN(opts)), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", opts.Driver)
	}
}

func sqliteDSN(opts *Options) string {
	if opts.DSN != "" {
		return opts.DSN
	}
	return opts.Name
}

// Open 打开数据库连接并配置连接池
func Open(opts *Options) (*gorm.DB, error) {
	dialector, err := Dialector(opts)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Silent
	if opts.LogSQL {
		level = gormlogger.Info
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接失败: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return connection, nil
}
