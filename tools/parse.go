package tools

import "strings"

// FirstLine
// 返回第一行内容，用于 commit message 等多行文本
func (p parseFunctions) FirstLine(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body)
}

// ShortSHA
// 7 位的 commit sha
func (p parseFunctions) ShortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
