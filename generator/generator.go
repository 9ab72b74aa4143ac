// generator 包根据 GitHub 仓库的 issue、pull request、milestone 生成 markdown 文档。
//
// 一次运行按固定顺序执行：
// 1. 创建目录
// 2. 写入首页
// 3. issue
// 4. pull request
// 5. milestone
//
// 每次都重新获取全部数据并覆盖已有文件。
// 获取失败只记录日志并跳过对应的 section 或页面，文件系统错误则中止运行。
package generator

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"gh-docs/metrics"
	"gh-docs/model"
	"gh-docs/render"
	"gh-docs/source"
)

// section 名称，同时也是日志和指标中的 section
const (
	SectionIndex        = "index"
	SectionIssues       = "issues"
	SectionPullRequests = "pull-requests"
	SectionMilestones   = "milestones"
)

type Options struct {
	Owner      string
	Repository string
	// 输出目录，默认为 docs
	Output  string
	Log     *zap.SugaredLogger
	Metrics *metrics.Metrics
	// 用于首页的更新时间，默认为 time.Now
	Now func() time.Time
}

// Report 一次运行的结果
type Report struct {
	RunID    string
	Pages    int
	Failures []*FetchError
}

// Failed 是否有 section 或页面因获取失败而跳过
func (r Report) Failed() bool {
	return len(r.Failures) > 0
}

type Generator struct {
	src source.Source
	fs  afero.Fs
	opt Options

	// 同一时间只允许一次运行写入目录
	mu     sync.Mutex
	log    *zap.SugaredLogger
	report *Report
}

func New(src source.Source, fs afero.Fs, opt Options) *Generator {
	if opt.Output == "" {
		opt.Output = "docs"
	}
	if opt.Log == nil {
		opt.Log = zap.NewNop().Sugar()
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &Generator{
		src:    src,
		fs:     fs,
		opt:    opt,
		log:    opt.Log,
		report: &Report{},
	}
}

// Run 依次执行全部步骤
// 只有文件系统错误和 ctx 取消会返回 error
func (g *Generator) Run(ctx context.Context) (Report, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.report = &Report{RunID: uuid.New().String()}
	g.log = g.opt.Log.With("run", g.report.RunID)
	start := time.Now()

	g.log.Infow("generate docs",
		"step", "start",
		"repository", g.fullName(),
		"output", g.opt.Output)

	steps := []func() error{
		g.EnsureLayout,
		g.WriteTopIndex,
		func() error { return g.RenderIssues(ctx) },
		func() error { return g.RenderPullRequests(ctx) },
		func() error { return g.RenderMilestones(ctx) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			g.opt.Metrics.RunFinished(metrics.ResultFailure)
			g.log.Errorw("generate docs",
				"step", "abort",
				"err", err.Error())
			return *g.report, err
		}
	}

	result := metrics.ResultSuccess
	if g.report.Failed() {
		result = metrics.ResultPartial
	}
	g.opt.Metrics.RunFinished(result)
	g.log.Infow("generate docs",
		"step", "done",
		"result", result,
		"pages", g.report.Pages,
		"failures", len(g.report.Failures),
		"elapsed", time.Since(start).String())
	return *g.report, nil
}

func (g *Generator) fullName() string {
	return g.opt.Owner + "/" + g.opt.Repository
}

// path 返回输出目录下的路径
func (g *Generator) path(elem ...string) string {
	return filepath.Join(append([]string{g.opt.Output}, elem...)...)
}

// EnsureLayout 创建输出目录，已存在时不做任何操作
func (g *Generator) EnsureLayout() error {
	dirs := []string{
		g.path(),
		g.path(render.IssuesDir),
		g.path(render.PullRequestsDir),
		g.path(render.MilestonesDir),
	}
	for _, dir := range dirs {
		if err := g.fs.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: dir, Err: err}
		}
	}
	return nil
}

// WriteTopIndex 写入首页
func (g *Generator) WriteTopIndex() error {
	return g.write(SectionIndex, g.path(render.Index), render.TopIndex(g.fullName(), g.opt.Now()))
}

func (g *Generator) write(section, path, content string) error {
	if err := afero.WriteFile(g.fs, path, []byte(content), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	g.report.Pages++
	g.opt.Metrics.PageWritten(section)
	g.log.Debugw("write page",
		"section", section,
		"path", path)
	return nil
}

// fail 记录获取失败，不中止运行
// 失败由 ctx 取消引起时不记录，返回 ctx.Err() 中止运行
func (g *Generator) fail(ctx context.Context, section, op string, number int, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	g.report.Failures = append(g.report.Failures, &FetchError{
		Section: section,
		Op:      op,
		Number:  number,
		Err:     err,
	})
	g.opt.Metrics.FetchFailed(section, op)
	g.log.Errorw(op,
		"section", section,
		"number", number,
		"err", err.Error())
	return nil
}

// withoutPullRequests 去除 issue 接口返回的 pull request
func withoutPullRequests(issues []model.Issue) []model.Issue {
	result := make([]model.Issue, 0, len(issues))
	for _, v := range issues {
		if v.IsPullRequest {
			continue
		}
		result = append(result, v)
	}
	return result
}
