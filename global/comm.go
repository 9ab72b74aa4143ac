// comm.go 包含了各个子命令通用的一些变量
// 如：日志等
package global

import (
	"go.uber.org/zap"
)

// 日志对象
// 未初始化前为 nop logger，测试中可直接使用
var Sugar = zap.NewNop().Sugar()

// Init 根据日志级别初始化日志对象
// pro 为生产环境，其它为开发环境
func Init(level string) {
	var (
		logger *zap.Logger
		err    error
	)
	if level == "pro" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err.Error())
	}
	Sugar = logger.Sugar()
}
