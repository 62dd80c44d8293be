package engine

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/dszqbsm/congress/archive"
	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/parse/billtext"
	"go.uber.org/zap"
)

/*
输入上下文和届次，输出运行统计和一个错误

处理所有已归档的Text页面：抽取各版本的纯文本写入text目录，并把版本列表记录到议案上
*/
func (e *Engine) RunText(ctx context.Context, congress int) (Stats, error) {
	return e.walk(ctx, congress, archive.BillTextFile, e.TextFile)
}

/*
输入一个已归档Text页面的路径，输出一个错误

没有版本选择器时页面本身即唯一的版本text；有版本选择器时逐个读取已归档的版本页面，未归档的版本只记录地址。纯文本文件已存在时不再重写
*/
func (e *Engine) TextFile(path string) error {
	page, err := readTextPage(path)
	if err != nil {
		return err
	}
	if err := page.Valid(); err != nil {
		return fmt.Errorf("%w: title %q", ErrInvalidPage, page.Title)
	}
	key, err := archive.KeyFromPath(path)
	if err != nil {
		return err
	}

	var texts []bill.TextVersion
	if len(page.Versions) == 0 {
		tv, err := e.writeVersion(key, billtext.DefaultVersion, key.TextURL(), page)
		if err != nil {
			return err
		}
		texts = append(texts, tv)
	}
	for _, v := range page.Versions {
		vpath := e.Archive.VersionPagePath(key, v.Name)
		if !archive.Exists(vpath) {
			e.Logger.Warn("version page not archived", zap.Stringer("bill", key), zap.String("version", v.Name))
			texts = append(texts, bill.TextVersion{Version: v.Name, URL: v.URL})
			continue
		}
		vpage, err := readTextPage(vpath)
		if err != nil {
			return err
		}
		tv, err := e.writeVersion(key, v.Name, v.URL, vpage)
		if err != nil {
			return err
		}
		texts = append(texts, tv)
	}

	rec, err := e.load(key)
	if err != nil {
		return err
	}
	rec.Texts = texts
	rec.UpdatedAt = e.now()
	if err := e.Storage.Save(rec); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (e *Engine) writeVersion(key bill.Key, version, url string, page *billtext.Page) (bill.TextVersion, error) {
	tv := bill.TextVersion{Version: version, URL: url, Formats: page.Formats(version)}

	txtPath := e.Archive.VersionTextPath(key, version)
	if !archive.Exists(txtPath) {
		if page.Text == nil {
			e.Logger.Warn("bill text not found", zap.Stringer("bill", key), zap.String("version", version))
			return tv, nil
		}
		if err := archive.Write(txtPath, []byte(*page.Text)); err != nil {
			return tv, err
		}
	}
	rel, err := filepath.Rel(e.Archive.Root(), txtPath)
	if err != nil {
		return tv, err
	}
	tv.Path = filepath.ToSlash(rel)
	return tv, nil
}

func readTextPage(path string) (*billtext.Page, error) {
	content, err := archive.Read(path)
	if err != nil {
		return nil, err
	}
	return billtext.Parse(bytes.NewReader(content))
}
