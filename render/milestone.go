package render

import (
	"bytes"
	"fmt"

	"gh-docs/model"
)

func due(m model.Milestone) string {
	if m.DueOn == nil {
		return NoDueDate
	}
	return date(*m.DueOn)
}

// MilestoneIndex milestone 汇总页
func MilestoneIndex(milestones []model.Milestone) string {
	open := 0
	for _, v := range milestones {
		if v.State == model.StateOpen {
			open++
		}
	}

	bf := bytes.Buffer{}
	bf.WriteString("# Milestones\n\n")
	bf.WriteString(fmt.Sprintf("Total: %d | Open: %d | Closed: %d\n\n", len(milestones), open, len(milestones)-open))
	if len(milestones) == 0 {
		bf.WriteString("_No milestones found._\n")
		return bf.String()
	}

	table(&bf, "Milestone", "State", "Due", "Progress", "Open", "Closed", "Created", "Updated")
	for _, v := range milestones {
		row(&bf,
			fmt.Sprintf("[%s](%s)", linkText(cell(v.Title)), MilestoneFile(v.Number)),
			v.State,
			due(v),
			fmt.Sprintf("%d%%", v.Progress()),
			fmt.Sprintf("%d", v.OpenIssues),
			fmt.Sprintf("%d", v.ClosedIssues),
			date(v.CreatedAt),
			date(v.UpdatedAt),
		)
	}
	return bf.String()
}

// MilestoneDetail milestone 详情页
// related 为该 milestone 下的 issue，relatedErr 表示获取失败
func MilestoneDetail(m model.Milestone, related []model.Issue, relatedErr bool) string {
	bf := bytes.Buffer{}
	bf.WriteString(fmt.Sprintf("# Milestone: %s\n\n", m.Title))

	item(&bf, "State", m.State)
	item(&bf, "Due", due(m))
	item(&bf, "Progress", fmt.Sprintf("%d%% (%d closed / %d open)", m.Progress(), m.ClosedIssues, m.OpenIssues))

	bf.WriteString("\n## Description\n\n")
	bf.WriteString(description(m.Description) + "\n")

	switch {
	case relatedErr:
		bf.WriteString("\n## Related Issues\n\n")
		bf.WriteString(NoRelatedIssues + "\n")
	case len(related) > 0:
		bf.WriteString(fmt.Sprintf("\n## Related Issues (%d)\n\n", len(related)))
		table(&bf, "#", "State", "Title", "Assignee")
		for _, v := range related {
			row(&bf,
				fmt.Sprintf("[#%d](../%s/%s)", v.Number, IssuesDir, IssueFile(v.Number)),
				v.State,
				cell(v.Title),
				cell(join(v.Assignees, Unassigned)),
			)
		}
	}
	return bf.String()
}
