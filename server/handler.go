package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/webhooks.v5/github"
)

// 解析的事件列表
// 这些事件都会影响生成的文档
var events = []github.Event{
	github.PingEvent,
	github.IssuesEvent,
	github.IssueCommentEvent,
	github.PullRequestEvent,
	github.PullRequestReviewCommentEvent,
	github.MilestoneEvent,
}

func (s *Server) handler(c *gin.Context) {
	payload, err := s.hook.Parse(c.Request, events...)
	if err != nil {
		switch {
		// 不关心的事件
		case errors.Is(err, github.ErrEventNotFound):
			c.JSON(http.StatusOK, gin.H{"scheduled": false})
		case errors.Is(err, github.ErrHMACVerificationFailed), errors.Is(err, github.ErrMissingHubSignatureHeader):
			s.log.Warnw("webhook",
				"step", "verify signature",
				"err", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			s.log.Warnw("webhook",
				"step", "parse payload",
				"err", err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	repo, action, event := "", "", c.GetHeader("X-GitHub-Event")
	switch p := payload.(type) {
	case github.PingPayload:
		c.JSON(http.StatusOK, gin.H{"scheduled": false})
		return
	case github.IssuesPayload:
		repo, action = p.Repository.FullName, p.Action
	case github.IssueCommentPayload:
		repo, action = p.Repository.FullName, p.Action
	case github.PullRequestPayload:
		repo, action = p.Repository.FullName, p.Action
	case github.PullRequestReviewCommentPayload:
		repo, action = p.Repository.FullName, p.Action
	case github.MilestonePayload:
		repo, action = p.Repository.FullName, p.Action
	}

	// 不处理未知 repository 的事件，仓库名不区分大小写
	if !strings.EqualFold(repo, s.repo) {
		s.log.Debugw("webhook",
			"step", "ignore",
			"event", event,
			"repository", repo)
		c.JSON(http.StatusOK, gin.H{"scheduled": false})
		return
	}

	scheduled := s.Schedule(event + "/" + action)
	c.JSON(http.StatusAccepted, gin.H{"scheduled": scheduled})
}

// sync 手动触发一次生成
func (s *Server) sync(c *gin.Context) {
	scheduled := s.Schedule("manual")
	c.JSON(http.StatusAccepted, gin.H{"scheduled": scheduled})
}
