package tools

import (
	"github.com/google/go-github/v68/github"

	"gh-docs/model"
)

// Issue
// 将 github.Issue 转换为 model.Issue
func (c convertFunctions) Issue(issue *github.Issue) model.Issue {
	i := model.Issue{
		Number:        issue.GetNumber(),
		Title:         issue.GetTitle(),
		State:         issue.GetState(),
		Author:        issue.GetUser().GetLogin(),
		CreatedAt:     issue.GetCreatedAt().Time,
		UpdatedAt:     issue.GetUpdatedAt().Time,
		Body:          issue.GetBody(),
		Labels:        c.Label(issue.Labels),
		Assignees:     c.Assignees(issue.Assignees),
		IsPullRequest: issue.IsPullRequest(),
	}
	// 旧接口只返回单个 assignee
	if len(i.Assignees) == 0 && issue.Assignee != nil {
		i.Assignees = []string{issue.Assignee.GetLogin()}
	}
	if issue.Milestone != nil {
		i.Milestone = &model.MilestoneRef{
			Number: issue.Milestone.GetNumber(),
			Title:  issue.Milestone.GetTitle(),
		}
	}
	return i
}

// Label
// 传入 github.Label 列表，返回 label 名字
func (c convertFunctions) Label(sourceLabel []*github.Label) []string {
	if len(sourceLabel) == 0 {
		return nil
	}
	labels := make([]string, len(sourceLabel))
	for k, v := range sourceLabel {
		labels[k] = v.GetName()
	}
	return labels
}

// Assignees
// 传入 github.User 列表，返回 login 列表
func (c convertFunctions) Assignees(sourceUser []*github.User) []string {
	if len(sourceUser) == 0 {
		return nil
	}
	assignees := make([]string, len(sourceUser))
	for k, v := range sourceUser {
		assignees[k] = v.GetLogin()
	}
	return assignees
}

func (c convertFunctions) Comment(comment *github.IssueComment) model.Comment {
	return model.Comment{
		Author:    comment.GetUser().GetLogin(),
		Body:      comment.GetBody(),
		CreatedAt: comment.GetCreatedAt().Time,
	}
}

// ReviewComment
// outdated 的 review 评论没有 line，此时取 original_line
func (c convertFunctions) ReviewComment(comment *github.PullRequestComment) model.Comment {
	line := comment.GetLine()
	if line == 0 {
		line = comment.GetOriginalLine()
	}
	return model.Comment{
		Author:    comment.GetUser().GetLogin(),
		Body:      comment.GetBody(),
		CreatedAt: comment.GetCreatedAt().Time,
		Path:      comment.GetPath(),
		Line:      line,
	}
}

// PullRequest
// 列表接口不返回 merged 字段，此时根据 merged_at 判断
func (c convertFunctions) PullRequest(pr *github.PullRequest) model.PullRequest {
	return model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		State:     pr.GetState(),
		Merged:    pr.GetMerged() || pr.MergedAt != nil,
		MergedAt:  pr.GetMergedAt().Time,
		MergedBy:  pr.GetMergedBy().GetLogin(),
		Author:    pr.GetUser().GetLogin(),
		Head:      pr.GetHead().GetRef(),
		Base:      pr.GetBase().GetRef(),
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
		Body:      pr.GetBody(),
		Reviewers: c.Assignees(pr.RequestedReviewers),
	}
}

// Commit
// 作者优先取 GitHub login，账号已删除或非 GitHub 用户时取 commit 中的作者名
func (c convertFunctions) Commit(commit *github.RepositoryCommit) model.Commit {
	author := commit.GetAuthor().GetLogin()
	if author == "" {
		author = commit.GetCommit().GetAuthor().GetName()
	}
	return model.Commit{
		SHA:     commit.GetSHA(),
		Message: commit.GetCommit().GetMessage(),
		Author:  author,
	}
}

func (c convertFunctions) File(file *github.CommitFile) model.ChangedFile {
	return model.ChangedFile{
		Filename:  file.GetFilename(),
		Status:    file.GetStatus(),
		Additions: file.GetAdditions(),
		Deletions: file.GetDeletions(),
	}
}

func (c convertFunctions) Milestone(milestone *github.Milestone) model.Milestone {
	m := model.Milestone{
		Number:       milestone.GetNumber(),
		Title:        milestone.GetTitle(),
		State:        milestone.GetState(),
		Description:  milestone.GetDescription(),
		OpenIssues:   milestone.GetOpenIssues(),
		ClosedIssues: milestone.GetClosedIssues(),
		CreatedAt:    milestone.GetCreatedAt().Time,
		UpdatedAt:    milestone.GetUpdatedAt().Time,
	}
	if milestone.DueOn != nil {
		due := milestone.DueOn.Time
		m.DueOn = &due
	}
	return m
}
