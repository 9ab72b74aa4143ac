package generator

import (
	"context"

	"gh-docs/model"
	"gh-docs/render"
	"gh-docs/source"
)

// RenderMilestones 生成 milestone 汇总页和详情页
// 详情页按 milestone 重新获取 issue 列表，与 issue section 互不依赖
func (g *Generator) RenderMilestones(ctx context.Context) error {
	milestones, err := g.src.ListMilestones(ctx)
	if err != nil {
		return g.fail(ctx, SectionMilestones, "list milestones", 0, err)
	}
	g.log.Infow("render milestones", "milestones", len(milestones))

	if err := g.write(SectionMilestones, g.path(render.MilestonesDir, render.Index), render.MilestoneIndex(milestones)); err != nil {
		return err
	}

	for _, m := range milestones {
		if err := ctx.Err(); err != nil {
			return err
		}
		related, err := g.src.ListIssues(ctx, source.IssueFilter{State: model.StateAll, Milestone: m.Number})
		relatedErr := err != nil
		if relatedErr {
			if err := g.fail(ctx, SectionMilestones, "list milestone issues", m.Number, err); err != nil {
				return err
			}
		}
		path := g.path(render.MilestonesDir, render.MilestoneFile(m.Number))
		if err := g.write(SectionMilestones, path, render.MilestoneDetail(m, withoutPullRequests(related), relatedErr)); err != nil {
			return err
		}
	}
	return nil
}
