package config

// 通过toml加载运行配置，配置文件中缺失的键使用默认值

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/go-micro/plugins/v4/config/encoder/toml"
	"go-micro.dev/v4/config"
	"go-micro.dev/v4/config/reader"
	"go-micro.dev/v4/config/reader/json"
	"go-micro.dev/v4/config/source"
	"go-micro.dev/v4/config/source/file"
)

const DefaultPath = "config.toml"

// 存储后端
const (
	StorageMySQL  = "mysql"
	StorageSQLite = "sqlite"
	StorageBadger = "badger"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel string
	LogFile  string
	// 页面归档的根目录
	DataDir string
	Storage StorageConfig
	Fetcher FetcherConfig
}

type StorageConfig struct {
	Kind       string
	SqlURL     string // mysql的DSN或sqlite的文件路径
	Path       string // badger数据目录
	Table      string
	BatchCount int
}

type FetcherConfig struct {
	Timeout   time.Duration
	Proxy     []string
	UserAgent string
	// 两次请求之间的最小间隔
	WaitTime time.Duration
	// 每分钟最多请求数，0表示不限制
	MaxPerMinute int
}

func Default() Config {
	return Config{
		LogLevel: "info",
		DataDir:  "data",
		Storage: StorageConfig{
			Kind:       StorageSQLite,
			SqlURL:     "bills.db",
			Path:       "badger",
			Table:      "bills",
			BatchCount: 50,
		},
		Fetcher: FetcherConfig{
			Timeout:  60 * time.Second,
			WaitTime: 1 * time.Second,
		},
	}
}

/*
输入配置文件路径，输出配置和一个错误

文件不存在时返回默认配置；timeout与waitTime的单位为毫秒
*/
func Load(path string) (Config, error) {
	def := Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return def, nil
	}

	enc := toml.NewEncoder()
	cfg, err := config.NewConfig(config.WithReader(json.NewReader(reader.WithEncoder(enc))))
	if err != nil {
		return def, err
	}
	if err := cfg.Load(file.NewSource(
		file.WithPath(path),
		source.WithEncoder(enc),
	)); err != nil {
		return def, err
	}

	return Config{
		LogLevel: cfg.Get("logLevel").String(def.LogLevel),
		LogFile:  cfg.Get("logFile").String(def.LogFile),
		DataDir:  cfg.Get("data", "dir").String(def.DataDir),
		Storage: StorageConfig{
			Kind:       cfg.Get("storage", "kind").String(def.Storage.Kind),
			SqlURL:     cfg.Get("storage", "sqlURL").String(def.Storage.SqlURL),
			Path:       cfg.Get("storage", "path").String(def.Storage.Path),
			Table:      cfg.Get("storage", "table").String(def.Storage.Table),
			BatchCount: cfg.Get("storage", "batchCount").Int(def.Storage.BatchCount),
		},
		Fetcher: FetcherConfig{
			Timeout:   millis(cfg.Get("fetcher", "timeout"), def.Fetcher.Timeout),
			Proxy:     cfg.Get("fetcher", "proxy").StringSlice(def.Fetcher.Proxy),
			UserAgent: cfg.Get("fetcher", "userAgent").String(def.Fetcher.UserAgent),
			WaitTime:  millis(cfg.Get("fetcher", "waitTime"), def.Fetcher.WaitTime),

			MaxPerMinute: cfg.Get("fetcher", "maxPerMinute").Int(def.Fetcher.MaxPerMinute),
		},
	}, nil
}

func millis(v reader.Value, def time.Duration) time.Duration {
	return time.Duration(v.Int(int(def/time.Millisecond))) * time.Millisecond
}
