package limiter

// 请求限速，抓取时每次请求前等待令牌

import (
	"context"
	"sort"
	"time"

	"golang.org/x/time/rate"
)

// 限速器接口，统一了不同限速器的行为
type RateLimiter interface {
	Wait(context.Context) error // 阻塞直到可以继续执行，或上下文被取消
	Limit() rate.Limit
}

// 将多个限速器按速率限制从小到大排序后组合为一个
func Multi(limiters ...RateLimiter) RateLimiter {
	sort.Slice(limiters, func(i, j int) bool {
		return limiters[i].Limit() < limiters[j].Limit()
	})
	return &multiLimiter{limiters: limiters}
}

type multiLimiter struct {
	limiters []RateLimiter
}

// 所有限速器都放行时才返回
func (l *multiLimiter) Wait(ctx context.Context) error {
	for _, l := range l.limiters {
		if err := l.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// 返回最严格的速率限制
func (l *multiLimiter) Limit() rate.Limit {
	if len(l.limiters) == 0 {
		return rate.Inf
	}
	return l.limiters[0].Limit()
}

// eventCount次每duration
func Per(eventCount int, duration time.Duration) rate.Limit {
	return rate.Every(duration / time.Duration(eventCount))
}

/*
输入两次请求之间的间隔，输出一个限速器

桶容量为1，第一次请求立即放行，之后每次请求至少间隔interval；interval不大于0时不限速
*/
func Interval(interval time.Duration) RateLimiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(Per(1, interval), 1)
}
