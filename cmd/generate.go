// generate.go 对应 generate 子命令
// 效果是生成一次完整的文档，然后退出。
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"gh-docs/global"
	"gh-docs/metrics"
)

// 退出码
const (
	exitFatal   = 1
	exitPartial = 2
)

var (
	generateCmd *cobra.Command

	// 有 section 或页面获取失败时以 exitPartial 退出
	strict bool

	// 生成结束后将指标写入该文件，供 node_exporter textfile collector 读取
	textfile string
)

func init() {
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "生成文档。",
		Long:  `获取仓库的 issue、pull request、milestone，在输出目录生成 markdown 文档。`,
		Run: func(cmd *cobra.Command, args []string) {
			if code := generate(); code != 0 {
				os.Exit(code)
			}
		},
	}

	// 添加至 root 节点
	rootCmd.AddCommand(generateCmd)

	// 解析参数
	generateCmd.Flags().BoolVar(&strict, "strict", false, "有获取失败时以非零状态码退出")
	generateCmd.Flags().StringVar(&textfile, "metrics-textfile", "", "将指标写入指定文件")
}

func generate() int {
	conf := loadAndInit()
	defer func() { _ = global.Sugar.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	report, err := newGenerator(ctx, conf, metrics.New(reg)).Run(ctx)

	if textfile != "" {
		if err := prometheus.WriteToTextfile(textfile, reg); err != nil {
			global.Sugar.Errorw("write metrics",
				"file", textfile,
				"err", err.Error())
		}
	}

	if err != nil {
		global.Sugar.Errorw("generate docs",
			"status", "fail",
			"err", err.Error())
		return exitFatal
	}
	if strict && report.Failed() {
		for _, f := range report.Failures {
			global.Sugar.Warnw("generate docs",
				"status", "partial",
				"failure", f.Error())
		}
		return exitPartial
	}
	return 0
}
