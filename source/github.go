package source

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/go-github/v68/github"
	"go.uber.org/zap"

	"gh-docs/model"
	"gh-docs/tools"
)

// GitHub 基于 GitHub REST API 的 Source 实现
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
	log    *zap.SugaredLogger
}

var _ Source = (*GitHub)(nil)

func NewGitHub(client *github.Client, owner, repo string, log *zap.SugaredLogger) *GitHub {
	return &GitHub{
		client: client,
		owner:  owner,
		repo:   repo,
		log:    log,
	}
}

// check 检查 API 调用结果
// go-github 对非 2xx 的响应已经返回 error，这里额外确认 200
func (g *GitHub) check(op string, number int, resp *github.Response, err error) error {
	if err != nil {
		g.log.Errorw(op,
			"call api", "failed",
			"number", number,
			"err", err.Error(),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp != nil && resp.StatusCode != http.StatusOK {
		g.log.Errorw(op,
			"call api", "unexpect status code",
			"number", number,
			"status", resp.Status,
			"status code", resp.StatusCode,
		)
		return fmt.Errorf("%s: unexpected status code %d", op, resp.StatusCode)
	}
	return nil
}

func (g *GitHub) ListIssues(ctx context.Context, filter IssueFilter) ([]model.Issue, error) {
	opt := &github.IssueListByRepoOptions{
		State:       filter.State,
		ListOptions: github.ListOptions{Page: 1, PerPage: PerPage},
	}
	if opt.State == "" {
		opt.State = model.StateAll
	}
	if filter.Milestone > 0 {
		opt.Milestone = strconv.Itoa(filter.Milestone)
	}

	is, resp, err := g.client.Issues.ListByRepo(ctx, g.owner, g.repo, opt)
	if err := g.check("list issues", filter.Milestone, resp, err); err != nil {
		return nil, err
	}

	issues := make([]model.Issue, 0, len(is))
	for _, v := range is {
		issues = append(issues, tools.Convert.Issue(v))
	}
	g.log.Debugw("list issues",
		"milestone", filter.Milestone,
		"len", len(issues))
	return issues, nil
}

func (g *GitHub) ListIssueComments(ctx context.Context, number int) ([]model.Comment, error) {
	cs, resp, err := g.client.Issues.ListComments(ctx, g.owner, g.repo, number, nil)
	if err := g.check("list issue comments", number, resp, err); err != nil {
		return nil, err
	}

	comments := make([]model.Comment, 0, len(cs))
	for _, v := range cs {
		comments = append(comments, tools.Convert.Comment(v))
	}
	return comments, nil
}

func (g *GitHub) ListPullRequests(ctx context.Context) ([]model.PullRequest, error) {
	opt := &github.PullRequestListOptions{
		State:       model.StateAll,
		ListOptions: github.ListOptions{Page: 1, PerPage: PerPage},
	}
	ps, resp, err := g.client.PullRequests.List(ctx, g.owner, g.repo, opt)
	if err := g.check("list pull requests", 0, resp, err); err != nil {
		return nil, err
	}

	prs := make([]model.PullRequest, 0, len(ps))
	for _, v := range ps {
		prs = append(prs, tools.Convert.PullRequest(v))
	}
	g.log.Debugw("list pull requests", "len", len(prs))
	return prs, nil
}

// GetPullRequest 列表接口不返回 merged 信息，需要单独获取
func (g *GitHub) GetPullRequest(ctx context.Context, number int) (model.PullRequest, error) {
	pr, resp, err := g.client.PullRequests.Get(ctx, g.owner, g.repo, number)
	if err := g.check("get pull request", number, resp, err); err != nil {
		return model.PullRequest{}, err
	}
	return tools.Convert.PullRequest(pr), nil
}

func (g *GitHub) ListReviewComments(ctx context.Context, number int) ([]model.Comment, error) {
	cs, resp, err := g.client.PullRequests.ListComments(ctx, g.owner, g.repo, number, nil)
	if err := g.check("list review comments", number, resp, err); err != nil {
		return nil, err
	}

	comments := make([]model.Comment, 0, len(cs))
	for _, v := range cs {
		comments = append(comments, tools.Convert.ReviewComment(v))
	}
	return comments, nil
}

func (g *GitHub) ListCommits(ctx context.Context, number int) ([]model.Commit, error) {
	opt := &github.ListOptions{Page: 1, PerPage: PerPage}
	cs, resp, err := g.client.PullRequests.ListCommits(ctx, g.owner, g.repo, number, opt)
	if err := g.check("list commits", number, resp, err); err != nil {
		return nil, err
	}

	commits := make([]model.Commit, 0, len(cs))
	for _, v := range cs {
		commits = append(commits, tools.Convert.Commit(v))
	}
	return commits, nil
}

func (g *GitHub) ListFiles(ctx context.Context, number int) ([]model.ChangedFile, error) {
	opt := &github.ListOptions{Page: 1, PerPage: PerPage}
	fs, resp, err := g.client.PullRequests.ListFiles(ctx, g.owner, g.repo, number, opt)
	if err := g.check("list files", number, resp, err); err != nil {
		return nil, err
	}

	files := make([]model.ChangedFile, 0, len(fs))
	for _, v := range fs {
		files = append(files, tools.Convert.File(v))
	}
	return files, nil
}

func (g *GitHub) ListMilestones(ctx context.Context) ([]model.Milestone, error) {
	opt := &github.MilestoneListOptions{
		State:       model.StateAll,
		ListOptions: github.ListOptions{Page: 1, PerPage: PerPage},
	}
	ms, resp, err := g.client.Issues.ListMilestones(ctx, g.owner, g.repo, opt)
	if err := g.check("list milestones", 0, resp, err); err != nil {
		return nil, err
	}

	milestones := make([]model.Milestone, 0, len(ms))
	for _, v := range ms {
		milestones = append(milestones, tools.Convert.Milestone(v))
	}
	g.log.Debugw("list milestones", "len", len(milestones))
	return milestones, nil
}
