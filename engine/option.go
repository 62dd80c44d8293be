package engine

import (
	"github.com/dszqbsm/congress/archive"
	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/storage"
	"go.uber.org/zap"
)

type Option func(opts *options)

// 解析引擎配置选项
type options struct {
	Logger  *zap.Logger
	Storage storage.Storage  // 记录存储
	Archive *archive.Archive // 本地页面归档
	Types   []bill.Type      // 要处理的议案类型，按顺序处理
}

var defaultOptions = options{
	Logger: zap.NewNop(),
	Types:  bill.Types,
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.Logger = logger
	}
}

func WithStorage(s storage.Storage) Option {
	return func(opts *options) {
		opts.Storage = s
	}
}

func WithArchive(a *archive.Archive) Option {
	return func(opts *options) {
		opts.Archive = a
	}
}

func WithTypes(types ...bill.Type) Option {
	return func(opts *options) {
		opts.Types = types
	}
}
