package render

import (
	"bytes"
	"fmt"

	"gh-docs/model"
	"gh-docs/tools"
)

func branch(pr model.PullRequest) string {
	return fmt.Sprintf("`%s` → `%s`", pr.Head, pr.Base)
}

// PullRequestIndex pull request 汇总页
func PullRequestIndex(prs []model.PullRequest) string {
	counts := make(map[string]int)
	for _, v := range prs {
		counts[v.Status()]++
	}

	bf := bytes.Buffer{}
	bf.WriteString("# Pull Requests\n\n")
	bf.WriteString(fmt.Sprintf("Total: %d | Open: %d | Merged: %d | Closed: %d\n\n",
		len(prs), counts[model.StateOpen], counts[model.StateMerged], counts[model.StateClosed]))
	if len(prs) == 0 {
		bf.WriteString("_No pull requests found._\n")
		return bf.String()
	}

	table(&bf, "#", "Status", "Title", "Author", "Branch", "Created", "Updated")
	for _, v := range prs {
		row(&bf,
			fmt.Sprintf("[#%d](%s)", v.Number, PullRequestFile(v.Number)),
			v.Status(),
			cell(v.Title),
			user(v.Author),
			cell(branch(v)),
			date(v.CreatedAt),
			date(v.UpdatedAt),
		)
	}
	return bf.String()
}

// PullRequestDetail pull request 详情页
// 文件列表获取失败时以占位文字代替，不影响其它内容
func PullRequestDetail(pr model.PullRequest, detail model.PullRequestDetail) string {
	bf := bytes.Buffer{}
	bf.WriteString(fmt.Sprintf("# Pull Request #%d: %s\n\n", pr.Number, pr.Title))

	item(&bf, "Status", pr.Status())
	item(&bf, "Author", user(pr.Author))
	item(&bf, "Branch", branch(pr))
	item(&bf, "Created", timestamp(pr.CreatedAt))
	item(&bf, "Updated", timestamp(pr.UpdatedAt))
	if pr.Status() == model.StateMerged {
		merged := timestamp(pr.MergedAt)
		if pr.MergedBy != "" {
			merged += " by " + pr.MergedBy
		}
		item(&bf, "Merged", merged)
	}
	item(&bf, "Reviewers", join(pr.Reviewers, None))

	bf.WriteString("\n## Description\n\n")
	bf.WriteString(description(pr.Body) + "\n")

	if len(detail.Commits) > 0 {
		bf.WriteString(fmt.Sprintf("\n## Commits (%d)\n\n", len(detail.Commits)))
		for _, c := range detail.Commits {
			line := fmt.Sprintf("- `%s` %s", tools.Parse.ShortSHA(c.SHA), tools.Parse.FirstLine(c.Message))
			if c.Author != "" {
				line += fmt.Sprintf(" (%s)", c.Author)
			}
			bf.WriteString(line + "\n")
		}
	}

	if len(detail.ReviewComments) > 0 {
		bf.WriteString(fmt.Sprintf("\n## Review Comments (%d)\n", len(detail.ReviewComments)))
		for _, c := range detail.ReviewComments {
			heading := fmt.Sprintf("### %s on `%s`", user(c.Author), c.Path)
			if c.Line > 0 {
				heading += fmt.Sprintf(" line %d", c.Line)
			}
			bf.WriteString("\n" + heading + "\n\n")
			bf.WriteString(description(c.Body) + "\n")
		}
	}

	switch {
	case detail.FilesErr:
		bf.WriteString("\n## Changed Files\n\n")
		bf.WriteString(NoFiles + "\n")
	case len(detail.Files) > 0:
		bf.WriteString(fmt.Sprintf("\n## Changed Files (%d)\n\n", len(detail.Files)))
		for _, f := range detail.Files {
			bf.WriteString(fmt.Sprintf("- `%s` %s (+%d / -%d)\n", f.Filename, f.Status, f.Additions, f.Deletions))
		}
	}
	return bf.String()
}
