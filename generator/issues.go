package generator

import (
	"context"

	"gh-docs/model"
	"gh-docs/render"
	"gh-docs/source"
)

// RenderIssues 生成 issue 汇总页和详情页
// 列表获取失败时跳过整个 section；评论获取失败只跳过对应 issue 的详情页
func (g *Generator) RenderIssues(ctx context.Context) error {
	all, err := g.src.ListIssues(ctx, source.IssueFilter{State: model.StateAll})
	if err != nil {
		return g.fail(ctx, SectionIssues, "list issues", 0, err)
	}
	issues := withoutPullRequests(all)
	g.log.Infow("render issues",
		"fetched", len(all),
		"issues", len(issues))

	if err := g.write(SectionIssues, g.path(render.IssuesDir, render.Index), render.IssueIndex(issues)); err != nil {
		return err
	}

	for _, issue := range issues {
		if err := ctx.Err(); err != nil {
			return err
		}
		comments, err := g.src.ListIssueComments(ctx, issue.Number)
		if err != nil {
			if err := g.fail(ctx, SectionIssues, "list issue comments", issue.Number, err); err != nil {
				return err
			}
			continue
		}
		path := g.path(render.IssuesDir, render.IssueFile(issue.Number))
		if err := g.write(SectionIssues, path, render.IssueDetail(issue, comments)); err != nil {
			return err
		}
	}
	return nil
}
