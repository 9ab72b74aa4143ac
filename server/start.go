// start.go 对应 serve 子命令的实现
// serve 实现的是：
// 1. 启动 HTTP 服务，监听 Webhook 事件，仓库的 issue、pull request、milestone 有变化时重新生成文档。
// 2. 提供手动触发和 /metrics 接口。
// 所有生成都在同一个 worker 中执行，文档目录只有一个写入者。
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/go-playground/webhooks.v5/github"

	"gh-docs/generator"
)

// Runner 执行一次完整的文档生成
type Runner interface {
	Run(ctx context.Context) (generator.Report, error)
}

type Server struct {
	runner   Runner
	hook     *github.Webhook
	gatherer prometheus.Gatherer
	log      *zap.SugaredLogger
	// 仅处理该仓库的事件
	repo string
	// 容量为 1，等待中的请求会合并为一次
	trigger chan string
}

func New(runner Runner, repo, secret string, gatherer prometheus.Gatherer, log *zap.SugaredLogger) (*Server, error) {
	var opts []github.Option
	if secret != "" {
		opts = append(opts, github.Options.Secret(secret))
	}
	hook, err := github.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Server{
		runner:   runner,
		hook:     hook,
		gatherer: gatherer,
		log:      log,
		repo:     repo,
		trigger:  make(chan string, 1),
	}, nil
}

// Router 定义监听路由
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	v1.POST("/webhooks/", s.handler)
	v1.POST("/sync", s.sync)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

// Schedule 请求一次重新生成
// 已有等待中的请求时直接返回 false
func (s *Server) Schedule(reason string) bool {
	select {
	case s.trigger <- reason:
		s.log.Infow("schedule generate", "reason", reason)
		return true
	default:
		s.log.Debugw("schedule generate",
			"reason", reason,
			"status", "already pending")
		return false
	}
}

// Worker 依次执行生成请求，直到 ctx 结束
func (s *Server) Worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case reason := <-s.trigger:
			report, err := s.runner.Run(ctx)
			if err != nil {
				s.log.Errorw("generate docs",
					"reason", reason,
					"run", report.RunID,
					"err", err.Error())
				continue
			}
			s.log.Infow("generate docs",
				"reason", reason,
				"run", report.RunID,
				"pages", report.Pages,
				"failures", len(report.Failures))
		}
	}
}

// Start 启动 worker 和 HTTP 服务，ctx 结束时优雅退出
// 启动后会立即生成一次
func (s *Server) Start(ctx context.Context, addr string) error {
	go s.Worker(ctx)
	s.Schedule("startup")

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("start server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
