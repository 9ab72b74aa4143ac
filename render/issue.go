package render

import (
	"bytes"
	"fmt"

	"gh-docs/model"
)

// IssueIndex issue 汇总页
// 传入的 issue 应已去除 pull request
func IssueIndex(issues []model.Issue) string {
	open := 0
	for _, v := range issues {
		if v.State == model.StateOpen {
			open++
		}
	}

	bf := bytes.Buffer{}
	bf.WriteString("# Issues\n\n")
	bf.WriteString(fmt.Sprintf("Total: %d | Open: %d | Closed: %d\n\n", len(issues), open, len(issues)-open))
	if len(issues) == 0 {
		bf.WriteString("_No issues found._\n")
		return bf.String()
	}

	table(&bf, "#", "State", "Title", "Labels", "Assignee", "Created", "Updated")
	for _, v := range issues {
		row(&bf,
			fmt.Sprintf("[#%d](%s)", v.Number, IssueFile(v.Number)),
			v.State,
			cell(v.Title),
			cell(join(v.Labels, "")),
			cell(join(v.Assignees, Unassigned)),
			date(v.CreatedAt),
			date(v.UpdatedAt),
		)
	}
	return bf.String()
}

// IssueDetail issue 详情页
func IssueDetail(issue model.Issue, comments []model.Comment) string {
	bf := bytes.Buffer{}
	bf.WriteString(fmt.Sprintf("# Issue #%d: %s\n\n", issue.Number, issue.Title))

	item(&bf, "State", issue.State)
	item(&bf, "Author", user(issue.Author))
	item(&bf, "Created", timestamp(issue.CreatedAt))
	item(&bf, "Updated", timestamp(issue.UpdatedAt))
	item(&bf, "Labels", join(issue.Labels, None))
	item(&bf, "Assignees", join(issue.Assignees, Unassigned))
	if issue.Milestone != nil {
		item(&bf, "Milestone", fmt.Sprintf("[%s](../%s/%s)",
			linkText(issue.Milestone.Title), MilestonesDir, MilestoneFile(issue.Milestone.Number)))
	}

	bf.WriteString("\n## Description\n\n")
	bf.WriteString(description(issue.Body) + "\n")

	if len(comments) > 0 {
		bf.WriteString(fmt.Sprintf("\n## Comments (%d)\n", len(comments)))
		for _, c := range comments {
			bf.WriteString(fmt.Sprintf("\n### %s commented on %s\n\n", user(c.Author), timestamp(c.CreatedAt)))
			bf.WriteString(description(c.Body) + "\n")
		}
	}
	return bf.String()
}
