// model 包定义了生成文档所需的数据，均为 GitHub API 响应的只读投影。
// 每次运行都会重新获取，写完 markdown 后即丢弃。
package model

import (
	"math"
	"time"
)

// 状态
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateMerged = "merged"
	StateAll    = "all"
)

// MilestoneRef issue 所属的 milestone
type MilestoneRef struct {
	Number int
	Title  string
}

type Issue struct {
	Number    int
	Title     string
	State     string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
	// API 返回 null 时为空字符串
	Body      string
	Labels    []string
	Assignees []string
	Milestone *MilestoneRef

	// GitHub 的 issue 接口同样会返回 pull request，
	// 此类记录带有 pull_request 字段
	IsPullRequest bool
}

// Comment issue 评论或 review 评论
// review 评论额外带有 Path 和 Line
type Comment struct {
	Author    string
	Body      string
	CreatedAt time.Time
	Path      string
	Line      int
}

type PullRequest struct {
	Number    int
	Title     string
	State     string
	Merged    bool
	MergedAt  time.Time
	MergedBy  string
	Author    string
	Head      string
	Base      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Body      string
	Reviewers []string
}

// Status 返回 open、merged、closed 三者之一
// 已关闭但未合并的 pull request 与已合并的不同，不能简化为 open/closed
func (p PullRequest) Status() string {
	if p.State == StateOpen {
		return StateOpen
	}
	if p.Merged {
		return StateMerged
	}
	return StateClosed
}

type Commit struct {
	SHA string
	// 完整的 commit message，渲染时只取第一行
	Message string
	// login，无法解析为 GitHub 账号时为 commit 里的作者名
	Author string
}

type ChangedFile struct {
	Filename  string
	Status    string
	Additions int
	Deletions int
}

// PullRequestDetail pull request 详情页需要的关联数据
type PullRequestDetail struct {
	Commits        []Commit
	ReviewComments []Comment
	Files          []ChangedFile
	// 获取文件列表失败，详情页以占位文字代替
	FilesErr bool
}

type Milestone struct {
	Number       int
	Title        string
	State        string
	Description  string
	DueOn        *time.Time
	OpenIssues   int
	ClosedIssues int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Progress 完成百分比，四舍五入
// open 和 closed 均为 0 时返回 0
func (m Milestone) Progress() int {
	total := m.OpenIssues + m.ClosedIssues
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(m.ClosedIssues) / float64(total) * 100))
}
