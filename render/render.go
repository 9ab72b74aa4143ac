// render 包把 model 渲染为 markdown 页面。
// 每类页面一个函数，只依赖传入的数据，不做任何 IO。
// 相同输入总是得到相同输出，只有首页包含时间。
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// 占位文字
const (
	NoDescription   = "_No description provided._"
	Unassigned      = "unassigned"
	None            = "none"
	NoDueDate       = "No due date"
	NoFiles         = "_Could not retrieve changed files._"
	NoRelatedIssues = "_Could not retrieve related issues._"
)

// 目录及首页
const (
	Index           = "README.md"
	IssuesDir       = "issues"
	PullRequestsDir = "pull-requests"
	MilestonesDir   = "milestones"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05 UTC"
)

// 详情页文件名只由 number 决定，不补零
func IssueFile(number int) string {
	return fmt.Sprintf("issue-%d.md", number)
}

func PullRequestFile(number int) string {
	return fmt.Sprintf("pr-%d.md", number)
}

func MilestoneFile(number int) string {
	return fmt.Sprintf("milestone-%d.md", number)
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(dateLayout)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timestampLayout)
}

// cell 处理表格单元格内容，| 和换行会破坏表格
func cell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}

// linkText 处理链接文字，未转义的 [ ] 会破坏链接
func linkText(s string) string {
	return strings.NewReplacer("[", "\\[", "]", "\\]").Replace(s)
}

// description 正文为空时返回占位文字
func description(body string) string {
	body = strings.TrimSpace(strings.ReplaceAll(body, "\r\n", "\n"))
	if body == "" {
		return NoDescription
	}
	return body
}

func join(list []string, empty string) string {
	if len(list) == 0 {
		return empty
	}
	return strings.Join(list, ", ")
}

func user(login string) string {
	if login == "" {
		return "ghost"
	}
	return login
}

// table 写入表头和分隔行
func table(bf *bytes.Buffer, columns ...string) {
	bf.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	bf.WriteString(strings.Repeat("| --- ", len(columns)) + "|\n")
}

func row(bf *bytes.Buffer, cells ...string) {
	bf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func item(bf *bytes.Buffer, key, value string) {
	bf.WriteString(fmt.Sprintf("- **%s:** %s\n", key, value))
}

// TopIndex 首页，链接到三个子目录
func TopIndex(fullName string, now time.Time) string {
	bf := bytes.Buffer{}
	bf.WriteString(fmt.Sprintf("# %s Documentation\n\n", fullName))
	bf.WriteString(fmt.Sprintf("- [Issues](%s/%s)\n", IssuesDir, Index))
	bf.WriteString(fmt.Sprintf("- [Pull Requests](%s/%s)\n", PullRequestsDir, Index))
	bf.WriteString(fmt.Sprintf("- [Milestones](%s/%s)\n", MilestonesDir, Index))
	bf.WriteString(fmt.Sprintf("\n_Last updated: %s_\n", timestamp(now)))
	return bf.String()
}
