package spider

// 按年份逐个抓取众议院书记官网站的唱名表决页面

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dszqbsm/congress/archive"
	"go.uber.org/zap"
)

const rollCallNotAvailable = "roll call vote not available"

// 唱名表决页面地址，编号不补零
func RollCallURL(year, n int) string {
	return fmt.Sprintf("https://clerk.house.gov/Votes/%d%d", year, n)
}

/*
输入上下文、届次和年份，输出本次新写入的页面数和一个错误

从1号表决开始依次抓取，已归档的编号跳过；页面没有h1、h1为"Roll Call Vote Not Available"或返回404时视为该年表决已全部抓取
*/
func (s *Scraper) ScrapeRollCalls(ctx context.Context, congress, year int) (int, error) {
	written := 0
	for n := 1; ; n++ {
		path := s.archive.RollCallPath(congress, year, n)
		if archive.Exists(path) {
			continue
		}

		url := RollCallURL(year, n)
		content, err := s.fetcher.Get(ctx, url)
		var status *StatusError
		if errors.As(err, &status) && status.Code == http.StatusNotFound {
			s.logger.Info("roll call not found", zap.Int("year", year), zap.Int("roll_call", n))
			return written, nil
		}
		if err != nil {
			return written, fmt.Errorf("roll call %d-%d: %w", year, n, err)
		}

		heading, ok, err := firstHeading(content)
		if err != nil {
			return written, err
		}
		if !ok || strings.Contains(strings.ToLower(heading), rollCallNotAvailable) {
			s.logger.Info("last roll call reached", zap.Int("year", year), zap.Int("roll_call", n-1))
			return written, nil
		}

		if err := archive.Write(path, content); err != nil {
			return written, err
		}
		written++
		if n%10 == 0 {
			s.logger.Info("roll calls archived", zap.Int("year", year), zap.Int("roll_call", n))
		}
	}
}
