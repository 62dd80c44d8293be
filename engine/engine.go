package engine

// 解析引擎：遍历归档中的页面，逐页解析并按议案主键写入存储，一次只处理一个页面

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/archive"
	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/parse/allinfo"
	"github.com/dszqbsm/congress/storage"
	"go.uber.org/zap"
)

// 页面标题不符合预期，该页面被跳过
var ErrInvalidPage = errors.New("invalid page")

type Engine struct {
	options
	parser *allinfo.Parser
	now    func() time.Time
}

// 一次运行的统计
type Stats struct {
	Parsed  int
	Skipped int
}

func New(opts ...Option) (*Engine, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.Storage == nil {
		return nil, errors.New("engine: storage is required")
	}
	if options.Archive == nil {
		return nil, errors.New("engine: archive is required")
	}
	return &Engine{
		options: options,
		parser:  allinfo.New(allinfo.WithLogger(options.Logger.Named("allinfo"))),
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

/*
输入上下文和届次，输出运行统计和一个错误

按固定的类型顺序处理该届次下所有已归档的All Info页面，同一类型内按路径排序；标题不合法的页面记录错误日志后跳过，解析或存储失败时立即返回错误
*/
func (e *Engine) Run(ctx context.Context, congress int) (Stats, error) {
	return e.walk(ctx, congress, archive.AllInfoFile, e.ParseFile)
}

func (e *Engine) walk(ctx context.Context, congress int, file string, handle func(path string) error) (Stats, error) {
	var stats Stats
	for _, t := range e.Types {
		paths, err := e.Archive.List(congress, t, file)
		if err != nil {
			return stats, err
		}
		e.Logger.Info("processing bills",
			zap.Int("congress", congress), zap.String("type", string(t)), zap.Int("pages", len(paths)))

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			err := handle(path)
			switch {
			case errors.Is(err, ErrInvalidPage):
				e.Logger.Error("page skipped", zap.String("path", path), zap.Error(err))
				stats.Skipped++
			case err != nil:
				return stats, fmt.Errorf("%s: %w", path, err)
			default:
				stats.Parsed++
			}
		}
	}
	return stats, nil
}

/*
输入一个已归档All Info页面的路径，输出一个错误

从存储中载入已有记录或新建一条记录，重置主键与来源地址后依次运行各栏目的解析，最后整条保存
*/
func (e *Engine) ParseFile(path string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if !strings.HasPrefix(title, allinfo.TitlePrefix) {
		return fmt.Errorf("%w: title %q", ErrInvalidPage, title)
	}

	key, err := archive.KeyFromPath(path)
	if err != nil {
		return err
	}
	rec, err := e.load(key)
	if err != nil {
		return err
	}
	if err := e.parser.Extract(doc, rec); err != nil {
		return err
	}
	rec.UpdatedAt = e.now()
	if err := e.Storage.Save(rec); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	e.Logger.Debug("bill parsed", zap.Stringer("bill", key))
	return nil
}

// 载入已有记录，不存在时新建；主键与来源地址总是按页面重新设置
func (e *Engine) load(key bill.Key) (*bill.Record, error) {
	rec, err := e.Storage.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return bill.NewRecord(key), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	rec.Key = key
	rec.Source = key.SourceURL()
	return rec, nil
}

func readDocument(path string) (*goquery.Document, error) {
	content, err := archive.Read(path)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(content))
}
