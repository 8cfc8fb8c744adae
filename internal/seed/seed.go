package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	apperrors "editorial-platform/internal/errors"
	"editorial-platform/internal/model"
	"editorial-platform/internal/store"

	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File 种子文件结构，字段名与 API 请求体一致
type File struct {
	Products    []map[string]any `yaml:"products"`
	Articles    []map[string]any `yaml:"articles"`
	Collections []map[string]any `yaml:"collections"`
	Links       []map[string]any `yaml:"links"`
}

// Report 导入结果
type Report struct {
	Products    int `json:"products"`
	Articles    int `json:"articles"`
	Collections int `json:"collections"`
	Links       int `json:"links"`
	Skipped     int `json:"skipped"`
}

// Decode 读取 YAML 种子文件
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("解析种子文件失败: %w", err)
	}
	return &f, nil
}

// Apply 校验并写入全部文档；slug 已存在的链接跳过
//
// 写入逐条进行，中途失败时已写入的文档保留。
func Apply(ctx context.Context, s *store.Store, f *File, logger *zap.SugaredLogger) (Report, error) {
	var report Report
	logger = logger.Named("seed")

	for i, raw := range f.Products {
		var p model.Product
		if err := insert(ctx, s, model.ProductCollection, raw, &p); err != nil {
			return report, fmt.Errorf("products[%d]: %w", i, err)
		}
		report.Products++
	}
	for i, raw := range f.Articles {
		var a model.Article
		if err := insert(ctx, s, model.ArticleCollection, raw, &a); err != nil {
			return report, fmt.Errorf("articles[%d]: %w", i, err)
		}
		report.Articles++
	}
	for i, raw := range f.Collections {
		var c model.Collection
		if err := insert(ctx, s, model.CollectionCollection, raw, &c); err != nil {
			return report, fmt.Errorf("collections[%d]: %w", i, err)
		}
		report.Collections++
	}
	for i, raw := range f.Links {
		var l model.Link
		if err := convert(raw, &l); err != nil {
			return report, fmt.Errorf("links[%d]: %w", i, err)
		}
		if l.Slug == "" {
			return report, fmt.Errorf("links[%d]: %w", i, apperrors.Validation("种子链接必须指定 slug"))
		}
		taken, err := s.Exists(ctx, model.LinkCollection, store.Filter{}.Where(store.Eq("slug", l.Slug)))
		if err != nil {
			return report, fmt.Errorf("links[%d]: %w", i, err)
		}
		if taken {
			logger.Infow("链接已存在，跳过", "slug", l.Slug)
			report.Skipped++
			continue
		}
		if _, err := s.Create(ctx, model.LinkCollection, &l); err != nil {
			return report, fmt.Errorf("links[%d]: %w", i, err)
		}
		report.Links++
	}
	return report, nil
}

func insert(ctx context.Context, s *store.Store, collection string, raw map[string]any, doc store.Document) error {
	if err := convert(raw, doc); err != nil {
		return err
	}
	_, err := s.Create(ctx, collection, doc)
	return err
}

// convert 经 JSON 转换为模型，并执行与 API 相同的校验
func convert(raw map[string]any, dest any) error {
	payload, err := json.Marshal(raw)
	if err != nil {
		return apperrors.Validation("%v", err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return apperrors.Validation("%v", err)
	}
	if err := binding.Validator.ValidateStruct(dest); err != nil {
		return apperrors.Validation("%v", err)
	}
	return nil
}
