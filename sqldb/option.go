package sqldb

// 函数式选项模式

import (
	"go.uber.org/zap"
)

const (
	MySQL  = "mysql"
	SQLite = "sqlite"
)

type options struct {
	logger *zap.Logger
	driver string
	sqlURL string
}

// 默认选项
var defaultOptions = options{
	logger: zap.NewNop(),
	driver: MySQL,
}

type Option func(opts *options)

// 配置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// 配置驱动，取值为MySQL或SQLite
func WithDriver(driver string) Option {
	return func(opts *options) {
		opts.driver = driver
	}
}

// 配置连接地址，SQLite时为数据库文件路径
func WithConnURL(sqlURL string) Option {
	return func(opts *options) {
		opts.sqlURL = sqlURL
	}
}
