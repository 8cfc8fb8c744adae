package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation 请求数据不合法，在写入存储之前被拒绝
	ErrValidation = errors.New("validation failed")
	// ErrNotFound 按 id / slug / user 查询无结果
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSlug 链接 slug 已被占用
	ErrDuplicateSlug = errors.New("slug already exists")
	// ErrInvalidState 链接存在但没有可用的跳转目标
	ErrInvalidState = errors.New("link target missing")
	// ErrPersistence 存储不可达或查询失败
	ErrPersistence = errors.New("persistence error")
	// ErrUnavailable 存储连接未初始化
	ErrUnavailable = fmt.Errorf("%w: store not initialized", ErrPersistence)
)

// PersistenceError 记录失败的存储操作
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

// Unwrap 同时暴露 ErrPersistence 与底层错误
func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

// Validation 包装一条校验失败信息
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Is / As 转发标准库，方便调用方只导入本包
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }
