package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"gh-docs/global"
)

var (
	info *cobra.Command
)

func init() {
	// info
	info = &cobra.Command{
		Use:   "info",
		Short: "输出配置。",
		Long:  `输出合并了配置文件、环境变量、命令行参数后的配置，不包含 token 和 secret。`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadAndInit()
			out, err := yaml.Marshal(cfg)
			if err != nil {
				global.Sugar.Errorw("marshal config", "err", err.Error())
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
		},
	}

	// 添加至 root 节点
	rootCmd.AddCommand(info)
}
