package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultOutput   = "docs"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "dev"
	DefaultPort     = ":8080"
)

var (
	ErrMissingToken    = errors.New("GitHub token is required")
	ErrInvalidRepoName = errors.New("repository must be in owner/repo form")
)

// ConfigurationError 配置错误，在调用任何 API 之前出现，属于致命错误
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %q: %v", e.Key, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

type Config struct {
	// token 及 webhook secret 不输出
	Token  string `yaml:"-"`
	Secret string `yaml:"-"`

	Owner      string        `yaml:"owner"`
	Repository string        `yaml:"repository"`
	Output     string        `yaml:"output"`
	Timeout    time.Duration `yaml:"timeout"`
	// pro 为生产环境日志，其它值均为开发环境日志
	LogLevel string `yaml:"logLevel"`
	Port     string `yaml:"port"`
}

// 拼装 owner 和 repository
func (c Config) GetFullName() string {
	return fmt.Sprintf("%s/%s", c.Owner, c.Repository)
}

// ParseRepoName 解析 owner/repo 形式的仓库名
// 在第一个 / 处拆分，缺少 / 或任一部分为空时返回 ConfigurationError
func ParseRepoName(name string) (owner, repo string, err error) {
	parts := strings.SplitN(strings.TrimSpace(name), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || strings.Contains(parts[1], "/") {
		return "", "", &ConfigurationError{Key: KeyRepo, Err: fmt.Errorf("%w: %q", ErrInvalidRepoName, name)}
	}
	return parts[0], parts[1], nil
}
