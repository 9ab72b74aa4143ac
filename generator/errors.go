package generator

import "fmt"

// FetchError 获取数据失败
// 列表失败时 Number 为 0，会跳过整个 section；
// 详情失败只影响对应的页面。两者都不会中止运行。
type FetchError struct {
	Section string
	Op      string
	Number  int
	Err     error
}

func (e *FetchError) Error() string {
	if e.Number > 0 {
		return fmt.Sprintf("%s: %s #%d: %v", e.Section, e.Op, e.Number, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Section, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// WriteError 文件系统错误，会中止运行
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
