// client 包，指的是 GitHub 客户端库的初始化。
package client

import (
	"context"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// New 初始化 GitHub Client
// timeout 限制单次请求的时长，避免网络异常时无限阻塞
func New(ctx context.Context, token string, timeout time.Duration) *github.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = timeout
	return github.NewClient(tc)
}
