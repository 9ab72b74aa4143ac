package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// viper 中的 key
const (
	KeyToken    = "token"
	KeyRepo     = "repo"
	KeyOutput   = "output"
	KeyTimeout  = "timeout"
	KeyLogLevel = "log-level"
	KeyPort     = "port"
	KeySecret   = "secret"
)

// 环境变量
var envs = map[string]string{
	KeyToken:    "GITHUB_TOKEN",
	KeyRepo:     "REPO_NAME",
	KeyOutput:   "DOCS_OUTPUT",
	KeyTimeout:  "GITHUB_TIMEOUT",
	KeyLogLevel: "LOG_LEVEL",
	KeyPort:     "PORT",
	KeySecret:   "WEBHOOK_SECRET",
}

// NewViper 返回设置好默认值和环境变量的 viper 实例
// 优先级：命令行参数 > 环境变量 > 配置文件 > 默认值
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyPort, DefaultPort)
	for k, env := range envs {
		_ = v.BindEnv(k, env)
	}
	return v
}

// LoadDotEnv 读取 .env 文件中的环境变量，文件不存在时忽略
// 已存在的环境变量不会被覆盖
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Load 读取配置
// file 为空时不读取配置文件
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigurationError{Key: "config", Err: err}
		}
	}

	c := &Config{
		Token:    v.GetString(KeyToken),
		Secret:   v.GetString(KeySecret),
		Output:   v.GetString(KeyOutput),
		Timeout:  v.GetDuration(KeyTimeout),
		LogLevel: v.GetString(KeyLogLevel),
		Port:     v.GetString(KeyPort),
	}

	// 没有 token 不能启动
	if c.Token == "" {
		return nil, &ConfigurationError{Key: KeyToken, Err: ErrMissingToken}
	}

	owner, repo, err := ParseRepoName(v.GetString(KeyRepo))
	if err != nil {
		return nil, err
	}
	c.Owner, c.Repository = owner, repo

	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c, nil
}
