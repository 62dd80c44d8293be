package bootstrap

// 根据配置组装日志、存储、归档和抓取器，供各个子命令使用

import (
	"fmt"
	"io"
	"time"

	"github.com/dszqbsm/congress/archive"
	"github.com/dszqbsm/congress/config"
	"github.com/dszqbsm/congress/limiter"
	"github.com/dszqbsm/congress/log"
	"github.com/dszqbsm/congress/proxy"
	"github.com/dszqbsm/congress/spider"
	"github.com/dszqbsm/congress/storage"
	"github.com/dszqbsm/congress/storage/badgerstorage"
	"github.com/dszqbsm/congress/storage/memstorage"
	"github.com/dszqbsm/congress/storage/sqlstorage"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type App struct {
	Config config.Config
	Logger *zap.Logger
	closer io.Closer
}

/*
输入配置文件路径，输出组装好日志器的App和一个错误

日志器同时设置为zap的全局日志器
*/
func Load(path string) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return New(cfg)
}

func New(cfg config.Config) (*App, error) {
	logger, closer, err := log.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zap.ReplaceGlobals(logger)
	logger.Debug("log init end")
	return &App{Config: cfg, Logger: logger, closer: closer}, nil
}

func (a *App) Archive() *archive.Archive {
	return archive.New(a.Config.DataDir)
}

// 按storage.kind创建记录存储
func (a *App) Storage() (storage.Storage, error) {
	sc := a.Config.Storage
	logger := a.Logger.Named(sc.Kind)
	switch sc.Kind {
	case config.StorageMySQL, config.StorageSQLite:
		s, err := sqlstorage.New(
			sqlstorage.WithDriver(sc.Kind),
			sqlstorage.WithSqlURL(sc.SqlURL),
			sqlstorage.WithTable(sc.Table),
			sqlstorage.WithBatchCount(sc.BatchCount),
			sqlstorage.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageBadger:
		s, err := badgerstorage.New(
			badgerstorage.WithPath(sc.Path),
			badgerstorage.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMemory:
		return memstorage.New(), nil
	}
	return nil, fmt.Errorf("unknown storage kind %q", sc.Kind)
}

/*
输入一组额外的抓取选项，输出页面抓取器和一个错误

代理列表、超时、User-Agent和请求间隔来自fetcher配置，额外选项在其后生效
*/
func (a *App) Fetcher(opts ...spider.Option) (spider.Fetcher, error) {
	fc := a.Config.Fetcher
	base := []spider.Option{
		spider.WithLogger(a.Logger.Named("fetcher")),
		spider.WithTimeout(fc.Timeout),
		spider.WithLimiter(a.limiter()),
	}
	if fc.UserAgent != "" {
		base = append(base, spider.WithUserAgent(fc.UserAgent))
	}
	if len(fc.Proxy) > 0 {
		p, err := proxy.RoundRobinProxySwitcher(fc.Proxy...)
		if err != nil {
			return nil, err
		}
		base = append(base, spider.WithProxy(p))
	}
	return spider.NewFetcher(append(base, opts...)...), nil
}

// 固定间隔与每分钟上限同时生效
func (a *App) limiter() limiter.RateLimiter {
	fc := a.Config.Fetcher
	limiters := []limiter.RateLimiter{limiter.Interval(fc.WaitTime)}
	if fc.MaxPerMinute > 0 {
		limiters = append(limiters, rate.NewLimiter(limiter.Per(fc.MaxPerMinute, time.Minute), 1))
	}
	return limiter.Multi(limiters...)
}

// 同步并关闭日志
func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.closer.Close()
}
