package generator

import (
	"context"

	"gh-docs/model"
	"gh-docs/render"
)

// RenderPullRequests 生成 pull request 汇总页和详情页
// 每个 pull request 额外获取详情、review 评论、commit、文件列表，各自独立调用
func (g *Generator) RenderPullRequests(ctx context.Context) error {
	prs, err := g.src.ListPullRequests(ctx)
	if err != nil {
		return g.fail(ctx, SectionPullRequests, "list pull requests", 0, err)
	}
	g.log.Infow("render pull requests", "pull requests", len(prs))

	if err := g.write(SectionPullRequests, g.path(render.PullRequestsDir, render.Index), render.PullRequestIndex(prs)); err != nil {
		return err
	}

	for _, pr := range prs {
		if err := ctx.Err(); err != nil {
			return err
		}
		full, detail, ok, err := g.pullRequestDetail(ctx, pr.Number)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		path := g.path(render.PullRequestsDir, render.PullRequestFile(pr.Number))
		if err := g.write(SectionPullRequests, path, render.PullRequestDetail(full, detail)); err != nil {
			return err
		}
	}
	return nil
}

// pullRequestDetail 获取详情页所需的数据
// 详情、review 评论、commit 任一失败则跳过该页面；文件列表失败以占位文字代替
// 只有 ctx 取消时返回 error
func (g *Generator) pullRequestDetail(ctx context.Context, number int) (model.PullRequest, model.PullRequestDetail, bool, error) {
	detail := model.PullRequestDetail{}

	pr, err := g.src.GetPullRequest(ctx, number)
	if err != nil {
		return pr, detail, false, g.fail(ctx, SectionPullRequests, "get pull request", number, err)
	}

	detail.ReviewComments, err = g.src.ListReviewComments(ctx, number)
	if err != nil {
		return pr, detail, false, g.fail(ctx, SectionPullRequests, "list review comments", number, err)
	}

	detail.Commits, err = g.src.ListCommits(ctx, number)
	if err != nil {
		return pr, detail, false, g.fail(ctx, SectionPullRequests, "list commits", number, err)
	}

	detail.Files, err = g.src.ListFiles(ctx, number)
	if err != nil {
		if err := g.fail(ctx, SectionPullRequests, "list files", number, err); err != nil {
			return pr, detail, false, err
		}
		detail.Files = nil
		detail.FilesErr = true
	}
	return pr, detail, true, nil
}
