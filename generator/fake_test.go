package generator

import (
	"context"
	"fmt"

	"gh-docs/model"
	"gh-docs/source"
)

// fakeSource 内存中的 Source，errs 的 key 形如 "list issue comments#7"
type fakeSource struct {
	issues     []model.Issue
	comments   map[int][]model.Comment
	prs        []model.PullRequest
	reviews    map[int][]model.Comment
	commits    map[int][]model.Commit
	files      map[int][]model.ChangedFile
	milestones []model.Milestone
	errs       map[string]error
	calls      []string
	// onCall 在每次调用时执行，用于模拟调用过程中的取消
	onCall func(key string)
}

var _ source.Source = (*fakeSource)(nil)

func (f *fakeSource) call(op string, number int) error {
	key := fmt.Sprintf("%s#%d", op, number)
	f.calls = append(f.calls, key)
	if f.onCall != nil {
		f.onCall(key)
	}
	return f.errs[key]
}

func (f *fakeSource) ListIssues(_ context.Context, filter source.IssueFilter) ([]model.Issue, error) {
	if err := f.call("list issues", filter.Milestone); err != nil {
		return nil, err
	}
	if filter.Milestone == 0 {
		return f.issues, nil
	}
	var result []model.Issue
	for _, v := range f.issues {
		if v.Milestone != nil && v.Milestone.Number == filter.Milestone {
			result = append(result, v)
		}
	}
	return result, nil
}

func (f *fakeSource) ListIssueComments(_ context.Context, number int) ([]model.Comment, error) {
	if err := f.call("list issue comments", number); err != nil {
		return nil, err
	}
	return f.comments[number], nil
}

func (f *fakeSource) ListPullRequests(_ context.Context) ([]model.PullRequest, error) {
	if err := f.call("list pull requests", 0); err != nil {
		return nil, err
	}
	return f.prs, nil
}

func (f *fakeSource) GetPullRequest(_ context.Context, number int) (model.PullRequest, error) {
	if err := f.call("get pull request", number); err != nil {
		return model.PullRequest{}, err
	}
	for _, v := range f.prs {
		if v.Number == number {
			return v, nil
		}
	}
	return model.PullRequest{}, fmt.Errorf("pull request %d not found", number)
}

func (f *fakeSource) ListReviewComments(_ context.Context, number int) ([]model.Comment, error) {
	if err := f.call("list review comments", number); err != nil {
		return nil, err
	}
	return f.reviews[number], nil
}

func (f *fakeSource) ListCommits(_ context.Context, number int) ([]model.Commit, error) {
	if err := f.call("list commits", number); err != nil {
		return nil, err
	}
	return f.commits[number], nil
}

func (f *fakeSource) ListFiles(_ context.Context, number int) ([]model.ChangedFile, error) {
	if err := f.call("list files", number); err != nil {
		return nil, err
	}
	return f.files[number], nil
}

func (f *fakeSource) ListMilestones(_ context.Context) ([]model.Milestone, error) {
	if err := f.call("list milestones", 0); err != nil {
		return nil, err
	}
	return f.milestones, nil
}
