package proxy

// 为抓取请求轮流选择代理服务器

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
)

// 与http.Transport.Proxy的签名一致
type ProxyFunc func(*http.Request) (*url.URL, error)

type roundRobinSwitcher struct {
	proxyURLs []*url.URL
	index     uint32
}

func (r *roundRobinSwitcher) GetProxy(*http.Request) (*url.URL, error) {
	index := atomic.AddUint32(&r.index, 1) - 1
	return r.proxyURLs[index%uint32(len(r.proxyURLs))], nil
}

/*
输入一组代理服务器地址，输出轮询选择代理的函数和一个错误

地址必须带协议和主机，例如http://127.0.0.1:8888，列表为空时返回错误
*/
func RoundRobinProxySwitcher(proxyURLs ...string) (ProxyFunc, error) {
	if len(proxyURLs) < 1 {
		return nil, errors.New("proxy url list is empty")
	}
	urls := make([]*url.URL, len(proxyURLs))
	for i, u := range proxyURLs {
		parsed, err := url.Parse(u)
		if err != nil {
			return nil, err
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return nil, fmt.Errorf("proxy url %q: missing scheme or host", u)
		}
		urls[i] = parsed
	}
	return (&roundRobinSwitcher{proxyURLs: urls}).GetProxy, nil
}

// 逗号分隔的代理列表，空字符串表示不使用代理，此时返回nil
func FromList(list string) (ProxyFunc, error) {
	var urls []string
	for _, u := range strings.Split(list, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return nil, nil
	}
	return RoundRobinProxySwitcher(urls...)
}
