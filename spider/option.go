package spider

import (
	"time"

	"github.com/dszqbsm/congress/limiter"
	"github.com/dszqbsm/congress/proxy"
	"go.uber.org/zap"
)

const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

type options struct {
	logger    *zap.Logger
	timeout   time.Duration // http超时时间
	proxy     proxy.ProxyFunc
	userAgent string
	limit     limiter.RateLimiter
}

var defaultOptions = options{
	logger:    zap.NewNop(),
	timeout:   60 * time.Second,
	userAgent: DefaultUserAgent,
	limit:     limiter.Interval(0),
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

func WithProxy(p proxy.ProxyFunc) Option {
	return func(opts *options) {
		opts.proxy = p
	}
}

func WithUserAgent(ua string) Option {
	return func(opts *options) {
		opts.userAgent = ua
	}
}

// 每次请求前等待的限速器
func WithLimiter(l limiter.RateLimiter) Option {
	return func(opts *options) {
		opts.limit = l
	}
}
