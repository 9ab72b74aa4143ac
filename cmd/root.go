package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"gh-docs/client"
	"gh-docs/config"
	"gh-docs/generator"
	"gh-docs/global"
	"gh-docs/metrics"
	"gh-docs/source"
)

var (
	// 指定配置文件路径，为空时不读取配置文件
	c string

	// 命令行参数、环境变量、配置文件统一由 viper 读取
	// token 支持通过命令行参数或者环境变量 GITHUB_TOKEN 指定
	v = config.NewViper()
)

var rootCmd = &cobra.Command{
	Use:   "gh-docs",
	Short: "根据 GitHub 仓库生成 markdown 文档",
	Long:  `gh-docs 读取 GitHub 仓库的 issue、pull request、milestone，生成静态的 markdown 文档。`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Usage()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c, "config", "c", "", "指定配置文件路径")
	pf.StringP(config.KeyToken, "t", "", "GitHub Person Token.")
	pf.StringP(config.KeyRepo, "r", "", "仓库，格式为 owner/repo")
	pf.StringP(config.KeyOutput, "o", config.DefaultOutput, "文档输出目录")
	pf.Duration(config.KeyTimeout, config.DefaultTimeout, "GitHub API 单次请求超时时间")
	pf.String(config.KeyLogLevel, config.DefaultLogLevel, "日志级别，pro 为生产环境")
	_ = v.BindPFlags(pf)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// 通用的加载配置文件、初始化 log 组件函数
// 配置有误时直接退出，不会调用任何 API
func loadAndInit() *config.Config {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Printf("unable to load .env file, %v\n", err)
		os.Exit(1)
	}

	conf, err := config.Load(v, c)
	if err != nil {
		fmt.Printf("unable to load config, %v\n", err)
		os.Exit(1)
	}

	global.Init(conf.LogLevel)
	global.Sugar.Infow("finish load config",
		"repository", conf.GetFullName(),
		"output", conf.Output,
		"timeout", conf.Timeout.String())
	return conf
}

// newGenerator 根据配置组装 generator
func newGenerator(ctx context.Context, conf *config.Config, m *metrics.Metrics) *generator.Generator {
	gh := client.New(ctx, conf.Token, conf.Timeout)
	src := source.NewGitHub(gh, conf.Owner, conf.Repository, global.Sugar.With("component", "source"))
	return generator.New(src, afero.NewOsFs(), generator.Options{
		Owner:      conf.Owner,
		Repository: conf.Repository,
		Output:     conf.Output,
		Log:        global.Sugar.With("component", "generator"),
		Metrics:    m,
	})
}
