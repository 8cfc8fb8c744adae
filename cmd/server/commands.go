package main

import (
	"encoding/json"
	"fmt"
	"os"

	"editorial-platform/internal/handler"
	"editorial-platform/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "创建或更新全部集合",
	RunE: func(cmd *cobra.Command, args []string) error {
		sugaredLogger := zap.S()
		s := openStore(sugaredLogger)
		defer s.Close()
		if !s.Available() {
			return fmt.Errorf("数据库不可用: %w", s.ConnErr())
		}
		if err := s.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("数据库迁移失败: %w", err)
		}
		sugaredLogger.Info("✅ 数据库迁移成功")
		return nil
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "从 YAML 文件导入商品、文章、专题和短链",
	RunE: func(cmd *cobra.Command, args []string) error {
		sugaredLogger := zap.S()
		f, err := os.Open(seedFile)
		if err != nil {
			return fmt.Errorf("打开种子文件失败: %w", err)
		}
		defer f.Close()

		data, err := seed.Decode(f)
		if err != nil {
			return err
		}

		s := openStore(sugaredLogger)
		defer s.Close()
		if !s.Available() {
			return fmt.Errorf("数据库不可用: %w", s.ConnErr())
		}
		if err := s.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("数据库迁移失败: %w", err)
		}

		report, err := seed.Apply(cmd.Context(), s, data, sugaredLogger)
		if err != nil {
			return fmt.Errorf("导入失败: %w", err)
		}
		sugaredLogger.Infow("✅ 导入完成",
			"products", report.Products,
			"articles", report.Articles,
			"collections", report.Collections,
			"links", report.Links,
			"skipped", report.Skipped,
		)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "打印各集合文档数",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore(zap.S())
		defer s.Close()

		out, err := json.MarshalIndent(handler.Summarize(cmd.Context(), s, zap.S()), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seed.yaml", "种子文件路径")
}
