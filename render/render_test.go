package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gh-docs/model"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "issue-42.md", IssueFile(42))
	assert.Equal(t, "issue-7.md", IssueFile(7))
	assert.Equal(t, "pr-5.md", PullRequestFile(5))
	assert.Equal(t, "milestone-3.md", MilestoneFile(3))
}

func TestTopIndex(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))

	want := lines(
		"# octocat/hello Documentation",
		"",
		"- [Issues](issues/README.md)",
		"- [Pull Requests](pull-requests/README.md)",
		"- [Milestones](milestones/README.md)",
		"",
		"_Last updated: 2024-01-02 02:04:05 UTC_",
	)
	assert.Equal(t, want, TopIndex("octocat/hello", now))
}

func TestIssueIndex(t *testing.T) {
	issues := []model.Issue{
		{Number: 1, Title: "Crash | boom", State: "open", Labels: []string{"bug"}, Assignees: []string{"bob"}, CreatedAt: at(2, 0), UpdatedAt: at(3, 0)},
		{Number: 2, Title: "Old", State: "closed", CreatedAt: at(2, 0), UpdatedAt: at(3, 0)},
	}

	want := lines(
		"# Issues",
		"",
		"Total: 2 | Open: 1 | Closed: 1",
		"",
		"| # | State | Title | Labels | Assignee | Created | Updated |",
		"| --- | --- | --- | --- | --- | --- | --- |",
		"| [#1](issue-1.md) | open | Crash \\| boom | bug | bob | 2024-01-02 | 2024-01-03 |",
		"| [#2](issue-2.md) | closed | Old |  | unassigned | 2024-01-02 | 2024-01-03 |",
	)
	assert.Equal(t, want, IssueIndex(issues))
}

func TestIssueIndex_Empty(t *testing.T) {
	got := IssueIndex(nil)

	assert.Contains(t, got, "Total: 0 | Open: 0 | Closed: 0")
	assert.Contains(t, got, "_No issues found._")
}

func TestIssueDetail(t *testing.T) {
	issue := model.Issue{
		Number:    42,
		Title:     "Crash on start",
		State:     "open",
		Author:    "alice",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: at(3, 0),
		Labels:    []string{"bug", "ui"},
		Milestone: &model.MilestoneRef{Number: 3, Title: "v1.0"},
	}
	comments := []model.Comment{
		{Author: "bob", Body: "Same here", CreatedAt: at(2, 10)},
	}

	want := lines(
		"# Issue #42: Crash on start",
		"",
		"- **State:** open",
		"- **Author:** alice",
		"- **Created:** 2024-01-02 03:04:05 UTC",
		"- **Updated:** 2024-01-03 00:00:00 UTC",
		"- **Labels:** bug, ui",
		"- **Assignees:** unassigned",
		"- **Milestone:** [v1.0](../milestones/milestone-3.md)",
		"",
		"## Description",
		"",
		"_No description provided._",
		"",
		"## Comments (1)",
		"",
		"### bob commented on 2024-01-02 10:00:00 UTC",
		"",
		"Same here",
	)
	assert.Equal(t, want, IssueDetail(issue, comments))
}

func TestIssueDetail_Body(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: NoDescription},
		{name: "whitespace", body: " \r\n ", want: NoDescription},
		{name: "text", body: "Steps:\r\n1. run", want: "Steps:\n1. run"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IssueDetail(model.Issue{Number: 1, Body: tt.body}, nil)
			assert.Contains(t, got, "## Description\n\n"+tt.want+"\n")
			assert.NotContains(t, got, "null")
			assert.NotContains(t, got, "## Comments")
		})
	}
}

func TestPullRequestIndex(t *testing.T) {
	prs := []model.PullRequest{
		{Number: 1, Title: "wip", State: "open", Author: "alice", Head: "wip", Base: "main", CreatedAt: at(1, 0), UpdatedAt: at(2, 0)},
		{Number: 2, Title: "feat", State: "closed", Merged: true, Author: "bob", Head: "feat", Base: "main", CreatedAt: at(1, 0), UpdatedAt: at(2, 0)},
		{Number: 3, Title: "nope", State: "closed", Author: "carol", Head: "nope", Base: "main", CreatedAt: at(1, 0), UpdatedAt: at(2, 0)},
	}

	got := PullRequestIndex(prs)

	assert.Contains(t, got, "Total: 3 | Open: 1 | Merged: 1 | Closed: 1")
	assert.Contains(t, got, "| [#1](pr-1.md) | open | wip | alice | `wip` → `main` | 2024-01-01 | 2024-01-02 |")
	assert.Contains(t, got, "| [#2](pr-2.md) | merged | feat |")
	assert.Contains(t, got, "| [#3](pr-3.md) | closed | nope |")
}

func TestPullRequestDetail(t *testing.T) {
	pr := model.PullRequest{
		Number:    5,
		Title:     "Add feature",
		State:     "closed",
		Merged:    true,
		MergedAt:  at(5, 12),
		MergedBy:  "bob",
		Author:    "alice",
		Head:      "feature",
		Base:      "main",
		CreatedAt: at(1, 0),
		UpdatedAt: at(5, 12),
		Body:      "Implements X.\r\n",
		Reviewers: []string{"carol"},
	}
	detail := model.PullRequestDetail{
		Commits: []model.Commit{
			{SHA: "0123456789abcdef", Message: "Fix bug\n\nLonger body text", Author: "alice"},
			{SHA: "fedcba9", Message: "Docs"},
		},
		ReviewComments: []model.Comment{
			{Author: "carol", Body: "nit: rename", Path: "main.go", Line: 12},
		},
		Files: []model.ChangedFile{
			{Filename: "main.go", Status: "modified", Additions: 3, Deletions: 1},
		},
	}

	want := lines(
		"# Pull Request #5: Add feature",
		"",
		"- **Status:** merged",
		"- **Author:** alice",
		"- **Branch:** `feature` → `main`",
		"- **Created:** 2024-01-01 00:00:00 UTC",
		"- **Updated:** 2024-01-05 12:00:00 UTC",
		"- **Merged:** 2024-01-05 12:00:00 UTC by bob",
		"- **Reviewers:** carol",
		"",
		"## Description",
		"",
		"Implements X.",
		"",
		"## Commits (2)",
		"",
		"- `0123456` Fix bug (alice)",
		"- `fedcba9` Docs",
		"",
		"## Review Comments (1)",
		"",
		"### carol on `main.go` line 12",
		"",
		"nit: rename",
		"",
		"## Changed Files (1)",
		"",
		"- `main.go` modified (+3 / -1)",
	)
	got := PullRequestDetail(pr, detail)
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "Longer body text")
}

func TestPullRequestDetail_Status(t *testing.T) {
	tests := []struct {
		name   string
		state  string
		merged bool
		want   string
	}{
		{name: "open", state: "open", merged: true, want: "- **Status:** open\n"},
		{name: "merged", state: "closed", merged: true, want: "- **Status:** merged\n"},
		{name: "closed", state: "closed", merged: false, want: "- **Status:** closed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PullRequestDetail(model.PullRequest{Number: 1, State: tt.state, Merged: tt.merged}, model.PullRequestDetail{})
			assert.Contains(t, got, tt.want)
			if tt.want != "- **Status:** merged\n" {
				assert.NotContains(t, got, "**Merged:**")
			}
		})
	}
}

func TestPullRequestDetail_FilesErr(t *testing.T) {
	got := PullRequestDetail(model.PullRequest{Number: 1, State: "open"}, model.PullRequestDetail{FilesErr: true})

	assert.Contains(t, got, "## Changed Files\n\n"+NoFiles+"\n")
	assert.NotContains(t, got, "## Commits")
}

func TestMilestoneIndex(t *testing.T) {
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ms := []model.Milestone{
		{Number: 3, Title: "v1.0", State: "open", DueOn: &due, OpenIssues: 1, ClosedIssues: 3, CreatedAt: at(1, 0), UpdatedAt: at(5, 12)},
		{Number: 4, Title: "v2 [beta]", State: "closed"},
	}

	want := lines(
		"# Milestones",
		"",
		"Total: 2 | Open: 1 | Closed: 1",
		"",
		"| Milestone | State | Due | Progress | Open | Closed | Created | Updated |",
		"| --- | --- | --- | --- | --- | --- | --- | --- |",
		"| [v1.0](milestone-3.md) | open | 2024-06-01 | 75% | 1 | 3 | 2024-01-01 | 2024-01-05 |",
		`| [v2 \[beta\]](milestone-4.md) | closed | No due date | 0% | 0 | 0 | - | - |`,
	)
	assert.Equal(t, want, MilestoneIndex(ms))
}

func TestLinkText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "v1.0", want: "v1.0"},
		{in: "v1 [beta]", want: `v1 \[beta\]`},
		{in: "]]", want: `\]\]`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, linkText(tt.in), tt.in)
	}
}

func TestIssueDetail_MilestoneTitleEscaped(t *testing.T) {
	issue := model.Issue{
		Number:    1,
		Milestone: &model.MilestoneRef{Number: 2, Title: "v1 [beta]"},
	}

	got := IssueDetail(issue, nil)

	assert.Contains(t, got, `- **Milestone:** [v1 \[beta\]](../milestones/milestone-2.md)`)
}

func TestMilestoneDetail(t *testing.T) {
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	m := model.Milestone{Number: 3, Title: "v1.0", State: "open", DueOn: &due, OpenIssues: 1, ClosedIssues: 3}
	related := []model.Issue{{Number: 1, Title: "Crash", State: "open", Assignees: []string{"bob"}}}

	want := lines(
		"# Milestone: v1.0",
		"",
		"- **State:** open",
		"- **Due:** 2024-06-01",
		"- **Progress:** 75% (3 closed / 1 open)",
		"",
		"## Description",
		"",
		"_No description provided._",
		"",
		"## Related Issues (1)",
		"",
		"| # | State | Title | Assignee |",
		"| --- | --- | --- | --- |",
		"| [#1](../issues/issue-1.md) | open | Crash | bob |",
	)
	assert.Equal(t, want, MilestoneDetail(m, related, false))
}

func TestMilestoneDetail_RelatedErr(t *testing.T) {
	got := MilestoneDetail(model.Milestone{Number: 1, Title: "v1"}, nil, true)

	assert.Contains(t, got, "## Related Issues\n\n"+NoRelatedIssues+"\n")
	assert.Contains(t, got, "- **Progress:** 0% (0 closed / 0 open)")
}
