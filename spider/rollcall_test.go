package spider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/dszqbsm/congress/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 把站点地址改写到测试服务器，请求仍经过真实的抓取器
type siteFetcher struct {
	srv *httptest.Server
	f   Fetcher
}

func newSiteFetcher(t *testing.T, h http.Handler) *siteFetcher {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &siteFetcher{srv: srv, f: NewFetcher()}
}

func (s *siteFetcher) Get(ctx context.Context, raw string) ([]byte, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return s.f.Get(ctx, s.srv.URL+u.RequestURI())
}

// 记录每个路径被请求的次数
type hits struct {
	mu sync.Mutex
	n  map[string]int
}

func (h *hits) handle(mux *http.ServeMux, path, contentType, body string) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.n[r.URL.Path]++
		h.mu.Unlock()
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	})
}

func (h *hits) get(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.n[path]
}

func TestRollCallURL(t *testing.T) {
	assert.Equal(t, "https://clerk.house.gov/Votes/20211", RollCallURL(2021, 1))
	assert.Equal(t, "https://clerk.house.gov/Votes/2022123", RollCallURL(2022, 123))
}

func TestScraper_RollCalls(t *testing.T) {
	const html = "text/html; charset=utf-8"
	mux := http.NewServeMux()
	h := &hits{n: map[string]int{}}
	h.handle(mux, "/Votes/20211", html, "<html><h1>Roll Call 1</h1></html>")
	h.handle(mux, "/Votes/20212", html, "<html><h1>Roll Call 2 | Bill Number: H. R. 1</h1></html>")
	h.handle(mux, "/Votes/20213", html, "<html><h1>Roll Call Vote Not Available</h1></html>")
	h.handle(mux, "/Votes/20221", html, "<html><h1>Roll Call 1</h1></html>")
	h.handle(mux, "/Votes/20222", html, "<html><p>maintenance</p></html>")

	a := archive.New(t.TempDir())
	require.NoError(t, archive.Write(a.RollCallPath(117, 2021, 1), []byte("cached")))
	s := NewScraper(newSiteFetcher(t, mux), a, nil)

	tests := []struct {
		name    string
		year    int
		written int
		stored  []int
		missing []int
	}{
		{name: "not available heading", year: 2021, written: 1, stored: []int{1, 2}, missing: []int{3}},
		{name: "page without heading", year: 2022, written: 1, stored: []int{1}, missing: []int{2}},
		{name: "not found", year: 2023, written: 0, missing: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			written, err := s.ScrapeRollCalls(context.Background(), 117, tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.written, written)
			for _, n := range tt.stored {
				assert.True(t, archive.Exists(a.RollCallPath(117, tt.year, n)), n)
			}
			for _, n := range tt.missing {
				assert.False(t, archive.Exists(a.RollCallPath(117, tt.year, n)), n)
			}
		})
	}

	assert.Equal(t, 0, h.get("/Votes/20211"))
	content, err := archive.Read(a.RollCallPath(117, 2021, 2))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Bill Number: H. R. 1")
}
