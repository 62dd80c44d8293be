package spider

// 按议案编号区间抓取All Info页面或Text页面，压缩写入本地归档

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/archive"
	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/parse/billtext"
	"go.uber.org/zap"
)

const (
	siteTitle     = "Library of Congress"
	notFoundTitle = "Congress.gov | Library of Congress"
)

var (
	ErrInvalidTitle = errors.New("invalid page title")
	ErrPageNotFound = errors.New("page not found")
)

// 要抓取的页面种类
type PageKind int

const (
	AllInfoPage PageKind = iota
	TextPage
)

func (k PageKind) String() string {
	switch k {
	case AllInfoPage:
		return "all-info"
	case TextPage:
		return "text"
	}
	return fmt.Sprintf("PageKind(%d)", int(k))
}

// 站点的页面标题都包含"Library of Congress"，不存在的议案返回站点首页标题
func ValidateTitle(title string) error {
	if !strings.Contains(title, siteTitle) {
		return fmt.Errorf("%w: %q", ErrInvalidTitle, title)
	}
	if title == notFoundTitle {
		return ErrPageNotFound
	}
	return nil
}

func pageTitle(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}

// 页面第一个h1的文本，没有h1时ok为false
func firstHeading(content []byte) (heading string, ok bool, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", false, err
	}
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return "", false, nil
	}
	return strings.TrimSpace(h1.Text()), true, nil
}

type Scraper struct {
	fetcher Fetcher
	archive *archive.Archive
	logger  *zap.Logger
}

func NewScraper(fetcher Fetcher, a *archive.Archive, logger *zap.Logger) *Scraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scraper{fetcher: fetcher, archive: a, logger: logger}
}

/*
输入上下文、届次、议案类型、编号区间和页面种类，输出一个错误

已归档的页面直接跳过；页面标题校验失败时立即返回错误，已经写入的页面保留。抓取Text页面时，页面上列出的各个版本也一并抓取
*/
func (s *Scraper) Scrape(ctx context.Context, congress int, t bill.Type, start, end int, kind PageKind) error {
	for i := start; i <= end; i++ {
		key := bill.Key{Congress: congress, Type: t, Number: i}
		path, url := s.target(key, kind)

		if archive.Exists(path) {
			s.logger.Info("page already archived", zap.Stringer("bill", key), zap.Stringer("page", kind))
		} else {
			if err := s.fetch(ctx, url, path); err != nil {
				return fmt.Errorf("bill %s: %w", key, err)
			}
			s.logger.Info("page archived", zap.Stringer("bill", key), zap.Stringer("page", kind), zap.String("path", path))
		}

		if kind == TextPage {
			if err := s.scrapeVersions(ctx, key, path); err != nil {
				return fmt.Errorf("bill %s: %w", key, err)
			}
		}
	}
	return nil
}

func (s *Scraper) target(key bill.Key, kind PageKind) (path, url string) {
	if kind == TextPage {
		return s.archive.BillTextPath(key), key.TextURL()
	}
	return s.archive.AllInfoPath(key), key.SourceURL()
}

func (s *Scraper) fetch(ctx context.Context, url, path string) error {
	s.logger.Debug("loading", zap.String("url", url))
	content, err := s.fetcher.Get(ctx, url)
	if err != nil {
		return err
	}
	title, err := pageTitle(content)
	if err != nil {
		return err
	}
	if err := ValidateTitle(title); err != nil {
		return fmt.Errorf("%s: %w", url, err)
	}
	return archive.Write(path, content)
}

/*
输入上下文、议案主键和已归档Text页面的路径，输出一个错误

单一版本的页面本身即版本text；多版本议案的Text页面只有版本选择器，各版本在独立的页面上，未归档的版本页面先抓取。每个版本的PDF和XML文件一并下载
*/
func (s *Scraper) scrapeVersions(ctx context.Context, key bill.Key, path string) error {
	page, err := readTextPage(path)
	if err != nil {
		return err
	}
	if len(page.Versions) == 0 {
		return s.downloadFormats(ctx, key, billtext.DefaultVersion, page)
	}
	for _, v := range page.Versions {
		vpath := s.archive.VersionPagePath(key, v.Name)
		if !archive.Exists(vpath) {
			if err := s.fetch(ctx, v.URL, vpath); err != nil {
				return fmt.Errorf("version %s: %w", v.Name, err)
			}
			s.logger.Info("version page archived", zap.Stringer("bill", key), zap.String("version", v.Name))
		}
		vpage, err := readTextPage(vpath)
		if err != nil {
			return fmt.Errorf("version %s: %w", v.Name, err)
		}
		if err := s.downloadFormats(ctx, key, v.Name, vpage); err != nil {
			return fmt.Errorf("version %s: %w", v.Name, err)
		}
	}
	return nil
}

// 下载版本页面列出的格式文件，已存在的文件跳过；公法版本没有XML链接
func (s *Scraper) downloadFormats(ctx context.Context, key bill.Key, version string, page *billtext.Page) error {
	formats := page.Formats(version)
	if len(formats) == 0 {
		s.logger.Warn("no format links", zap.Stringer("bill", key), zap.String("version", version))
	}
	for _, f := range formats {
		fpath := s.archive.FormatPath(key, version, strings.ToLower(f.Text))
		if archive.Exists(fpath) {
			continue
		}
		content, err := s.fetcher.Get(ctx, f.URL)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Text, err)
		}
		if err := archive.Write(fpath, content); err != nil {
			return err
		}
		s.logger.Debug("format archived", zap.Stringer("bill", key), zap.String("version", version), zap.String("path", fpath))
	}
	return nil
}

func readTextPage(path string) (*billtext.Page, error) {
	content, err := archive.Read(path)
	if err != nil {
		return nil, err
	}
	return billtext.Parse(bytes.NewReader(content))
}
