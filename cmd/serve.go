// serve.go 对应 serve 子命令，表示启动服务。
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"gh-docs/config"
	"gh-docs/global"
	"gh-docs/metrics"
	"gh-docs/server"
)

var (
	serveCmd *cobra.Command
)

func init() {
	// serve
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "开始运行。",
		Long:  `启动 HTTP 服务，监听 GitHub Webhook，仓库有变化时重新生成文档。`,
		Run: func(cmd *cobra.Command, args []string) {
			conf := loadAndInit()
			if conf.LogLevel == "pro" {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				prometheus.NewGoCollector(),
				prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			)

			gen := newGenerator(ctx, conf, metrics.New(reg))
			srv, err := server.New(gen, conf.GetFullName(), conf.Secret, reg, global.Sugar.With("component", "server"))
			if err != nil {
				global.Sugar.Fatalw("init server", "err", err.Error())
			}
			if err := srv.Start(ctx, conf.Port); err != nil {
				global.Sugar.Fatalw("start server", "err", err.Error())
			}
			global.Sugar.Infow("stop server")
		},
	}

	// 添加至 root 节点
	rootCmd.AddCommand(serveCmd)

	// 解析参数
	serveCmd.Flags().String(config.KeyPort, config.DefaultPort, "监听地址")
	serveCmd.Flags().String(config.KeySecret, "", "GitHub Webhook secret")
	_ = v.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup(config.KeyPort))
	_ = v.BindPFlag(config.KeySecret, serveCmd.Flags().Lookup(config.KeySecret))
}
