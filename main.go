// gh-docs 根据 GitHub 仓库的 issue、pull request、milestone 生成 markdown 文档
// generate
//		生成一次完整的文档后退出
// serve
//		监听 webhook，仓库有变化时重新生成
// info
//		输出当前配置
package main

import "gh-docs/cmd"

func main() {
	cmd.Execute()
}
