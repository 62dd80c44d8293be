package spider

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Fetcher interface {
	/*
	   输入上下文和页面地址，输出转换为UTF-8的页面内容和一个错误

	   请求前先通过限速器取得令牌，响应状态码不为200时返回*StatusError，不做重试；
	   只有text类型的响应转换编码，PDF等其他类型原样返回
	*/
	Get(ctx context.Context, url string) ([]byte, error)
}

// 响应状态码不为200
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: error status code:%d", e.URL, e.Code)
}

type httpFetch struct {
	options
	client *http.Client
}

func NewFetcher(opts ...Option) Fetcher {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	client := &http.Client{Timeout: options.timeout}
	if options.proxy != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = options.proxy
		client.Transport = transport
	}
	return &httpFetch{options: options, client: client}
}

func (f *httpFetch) Get(ctx context.Context, url string) ([]byte, error) {
	if err := f.limit.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get url failed:%w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isText(contentType) {
		return io.ReadAll(resp.Body)
	}
	bodyReader := bufio.NewReader(resp.Body)
	e := DetermineEncoding(bodyReader, contentType)
	utf8Reader := transform.NewReader(bodyReader, e.NewDecoder())
	return io.ReadAll(utf8Reader)
}

// 未声明类型时按文本处理
func isText(contentType string) bool {
	return contentType == "" || strings.HasPrefix(strings.ToLower(contentType), "text/")
}

// 根据前1024字节和Content-Type推断编码，读取失败时按UTF-8处理
func DetermineEncoding(r *bufio.Reader, contentType string) encoding.Encoding {
	bytes, err := r.Peek(1024)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		zap.L().Error("peek body failed", zap.Error(err))
		return unicode.UTF8
	}
	e, _, _ := charset.DetermineEncoding(bytes, contentType)
	return e
}
