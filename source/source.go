// source 包定义了生成文档所需的 GitHub 数据接口。
// 只包含实际用到的操作，测试时可替换为内存实现。
package source

import (
	"context"

	"gh-docs/model"
)

// PerPage 每个列表只取一页，每页最多 100 条
const PerPage = 100

// IssueFilter issue 列表的筛选条件
type IssueFilter struct {
	// open、closed、all，为空时为 all
	State string
	// milestone number，0 表示不筛选
	Milestone int
}

type Source interface {
	ListIssues(ctx context.Context, filter IssueFilter) ([]model.Issue, error)
	ListIssueComments(ctx context.Context, number int) ([]model.Comment, error)
	ListPullRequests(ctx context.Context) ([]model.PullRequest, error)
	GetPullRequest(ctx context.Context, number int) (model.PullRequest, error)
	ListReviewComments(ctx context.Context, number int) ([]model.Comment, error)
	ListCommits(ctx context.Context, number int) ([]model.Commit, error)
	ListFiles(ctx context.Context, number int) ([]model.ChangedFile, error)
	ListMilestones(ctx context.Context) ([]model.Milestone, error)
}
