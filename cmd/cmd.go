package cmd

import (
	"github.com/dszqbsm/congress/cmd/parse"
	"github.com/dszqbsm/congress/cmd/scrape"
	"github.com/dszqbsm/congress/cmd/show"
	"github.com/dszqbsm/congress/config"
	"github.com/dszqbsm/congress/version"
	"github.com/spf13/cobra"
)

// cmd.go借助cobra库定义了命令行界面：scrape抓取页面写入归档，parse解析All Info页面写入存储，text抽取议案文本，show打印一条记录，version打印版本信息
// 所有子命令共用--config指定的toml配置文件

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version.",
	Long:  "print version.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.Fprint(cmd.OutOrStdout())
	},
}

func Execute() error {
	var rootCmd = &cobra.Command{Use: "congress", SilenceUsage: true} // 仅用于组织和挂载子命令
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "config file path")
	rootCmd.AddCommand(scrape.ScrapeCmd, parse.ParseCmd, parse.TextCmd, show.ShowCmd, versionCmd)
	return rootCmd.Execute()
}
