package shortcode

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"go.uber.org/zap"
)

const (
	// Charset 包含用于生成短码的所有字符
	Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength 是生成的短码的长度
	CodeLength = 7
	// MaxAttempts 单次生成允许的最大冲突次数
	MaxAttempts = 10
)

// ErrExhausted 连续冲突，放弃生成
var ErrExhausted = errors.New("shortcode: too many collisions")

// ExistsFunc 判断短码是否已被占用
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generator 为未指定 slug 的链接生成唯一短码
type Generator struct {
	exists ExistsFunc
	length int
	logger *zap.SugaredLogger
}

// NewGenerator 创建一个新的短码生成器实例
func NewGenerator(exists ExistsFunc, logger *zap.SugaredLogger) *Generator {
	return &Generator{
		exists: exists,
		length: CodeLength,
		logger: logger.Named("shortcode_generator"),
	}
}

// Generate 生成一个当前未被占用的短码
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for i := 0; i < MaxAttempts; i++ {
		code, err := RandomString(g.length)
		if err != nil {
			return "", err
		}
		taken, err := g.exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	g.logger.Warnf("已尝试%d次生成短码，但均存在冲突。", MaxAttempts)
	return "", ErrExhausted
}

// RandomString 使用加密安全的随机数生成器生成一个给定长度的字符串
func RandomString(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(Charset))))
		if err != nil {
			return "", err
		}
		b[i] = Charset[num.Int64()]
	}
	return string(b), nil
}
