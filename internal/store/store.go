package store

import (
	"context"
	"errors"
	"time"

	apperrors "editorial-platform/internal/errors"
	"editorial-platform/internal/model"
	"editorial-platform/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultTimeout 未配置时单次操作的超时
const DefaultTimeout = 3 * time.Second

// Document 可由存储分配身份的文档
type Document interface {
	Assign(id string, now time.Time)
}

// Store 按集合名访问文档的持久层
//
// 连接失败时 Store 仍然可用，但处于 unavailable 状态，所有操作返回 ErrUnavailable。
type Store struct {
	db      *gorm.DB
	driver  string
	name    string
	timeout time.Duration
	connErr error
	logger  *zap.SugaredLogger
}

// Open 建立连接；失败时返回处于 unavailable 状态的 Store 而不是 nil
func Open(opts *database.Options, timeout time.Duration, logger *zap.SugaredLogger) *Store {
	s := &Store{
		driver:  opts.Driver,
		name:    opts.Name,
		timeout: timeout,
		logger:  logger.Named("store"),
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}

	db, err := database.Open(opts)
	if err != nil {
		s.connErr = err
		s.logger.Warnf("存储不可用: %v", err)
		return s
	}
	s.db = db
	return s
}

// New 包装一个已经打开的 gorm 连接
func New(db *gorm.DB, timeout time.Duration, logger *zap.SugaredLogger) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Store{db: db, timeout: timeout, logger: logger.Named("store")}
	if db != nil {
		s.driver = db.Dialector.Name()
	}
	return s
}

// Available 连接是否已初始化
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// ConnErr 返回初始化失败的原因
func (s *Store) ConnErr() error {
	return s.connErr
}

// Driver 当前使用的方言名
func (s *Store) Driver() string {
	return s.driver
}

// Name 数据库名
func (s *Store) Name() string {
	return s.name
}

// Close 释放底层连接池
func (s *Store) Close() error {
	if !s.Available() {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate 创建全部集合
func (s *Store) Migrate(ctx context.Context) error {
	if !s.Available() {
		return apperrors.ErrUnavailable
	}
	if err := s.db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return &apperrors.PersistenceError{Op: "migrate", Collection: "*", Err: err}
	}
	return nil
}

// Ping 检查连接是否可用
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return apperrors.ErrUnavailable
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return &apperrors.PersistenceError{Op: "ping", Collection: "*", Err: err}
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return &apperrors.PersistenceError{Op: "ping", Collection: "*", Err: err}
	}
	return nil
}

// Collections 列出已存在的集合
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, apperrors.ErrUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	tables, err := s.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list", Collection: "*", Err: err}
	}
	return tables, nil
}

// Create 分配身份并写入文档，返回字符串形式的 id
func (s *Store) Create(ctx context.Context, collection string, doc Document) (string, error) {
	if !s.Available() {
		return "", apperrors.ErrUnavailable
	}
	id := uuid.NewString()
	doc.Assign(id, time.Now().UTC())

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.db.WithContext(ctx).Table(collection).Create(doc).Error; err != nil {
		return "", s.wrap("create", collection, err)
	}
	return id, nil
}

// Find 读取最多 limit 条匹配文档到 dest（切片指针），顺序为存储默认顺序
func (s *Store) Find(ctx context.Context, collection string, filter Filter, limit int, dest any) error {
	if !s.Available() {
		return apperrors.ErrUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.scope(ctx, collection, filter)
	if err != nil {
		return s.wrap("find", collection, err)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(dest).Error; err != nil {
		return s.wrap("find", collection, err)
	}
	return nil
}

// First 读取第一条匹配文档，没有结果时返回 ErrNotFound
func (s *Store) First(ctx context.Context, collection string, filter Filter, dest any) error {
	if !s.Available() {
		return apperrors.ErrUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.scope(ctx, collection, filter)
	if err != nil {
		return s.wrap("first", collection, err)
	}
	if err := tx.Take(dest).Error; err != nil {
		return s.wrap("first", collection, err)
	}
	return nil
}

// Exists 是否存在匹配文档
func (s *Store) Exists(ctx context.Context, collection string, filter Filter) (bool, error) {
	if !s.Available() {
		return false, apperrors.ErrUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.scope(ctx, collection, filter)
	if err != nil {
		return false, s.wrap("exists", collection, err)
	}
	var count int64
	if err := tx.Limit(1).Count(&count).Error; err != nil {
		return false, s.wrap("exists", collection, err)
	}
	return count > 0, nil
}

// Delete 删除匹配文档，返回删除条数；不允许空条件
func (s *Store) Delete(ctx context.Context, collection string, filter Filter, doc any) (int64, error) {
	if !s.Available() {
		return 0, apperrors.ErrUnavailable
	}
	if filter.IsEmpty() {
		return 0, s.wrap("delete", collection, gorm.ErrMissingWhereClause)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.scope(ctx, collection, filter)
	if err != nil {
		return 0, s.wrap("delete", collection, err)
	}
	res := tx.Delete(doc)
	if res.Error != nil {
		return 0, s.wrap("delete", collection, res.Error)
	}
	return res.RowsAffected, nil
}

// Count 集合中的文档总数
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	if !s.Available() {
		return 0, apperrors.ErrUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var count int64
	if err := s.db.WithContext(ctx).Table(collection).Count(&count).Error; err != nil {
		return 0, s.wrap("count", collection, err)
	}
	return count, nil
}

func (s *Store) scope(ctx context.Context, collection string, filter Filter) (*gorm.DB, error) {
	exprs, err := filter.expressions()
	if err != nil {
		return nil, err
	}
	tx := s.db.WithContext(ctx).Table(collection)
	for _, expr := range exprs {
		tx = tx.Where(expr)
	}
	return tx, nil
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// IsDuplicate 写入是否因唯一索引冲突失败
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (s *Store) wrap(op, collection string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	s.logger.Debugw("存储操作失败", "op", op, "collection", collection, "error", err)
	return &apperrors.PersistenceError{Op: op, Collection: collection, Err: err}
}
