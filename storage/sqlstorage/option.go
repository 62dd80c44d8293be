package sqlstorage

// 用于配置sql存储相关的选项

import (
	"github.com/dszqbsm/congress/sqldb"
	"go.uber.org/zap"
)

type options struct {
	logger     *zap.Logger
	driver     string
	sqlURL     string
	table      string
	BatchCount int // 批量数
}

// 默认选项
var defaultOptions = options{
	logger:     zap.NewNop(),
	driver:     sqldb.MySQL,
	table:      "bills",
	BatchCount: 50,
}

type Option func(opts *options)

// 配置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// 配置数据库驱动
func WithDriver(driver string) Option {
	return func(opts *options) {
		opts.driver = driver
	}
}

// 配置数据库的链接url
func WithSqlURL(sqlURL string) Option {
	return func(opts *options) {
		opts.sqlURL = sqlURL
	}
}

// 配置表名
func WithTable(table string) Option {
	return func(opts *options) {
		opts.table = table
	}
}

// 配置批量处理的数量
func WithBatchCount(batchCount int) Option {
	return func(opts *options) {
		opts.BatchCount = batchCount
	}
}
