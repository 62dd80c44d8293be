package allinfo

// 各解析器共用的工具：地址补全、日期解析、表格列布局识别

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
	"golang.org/x/net/html"
)

// 站点根地址，相对链接统一以此补全
const BaseURL = "https://www.congress.gov"

var (
	// 容器存在但内部结构不在已知集合中
	ErrUnknownLayout = errors.New("unknown layout")
	// 议员身份字符串格式不合法
	ErrInvalidMember = errors.New("invalid member")
	// 主题栏中的政策领域与tertiary栏记录的不一致
	ErrPolicyAreaMismatch = errors.New("policy area mismatch")
)

func layoutError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnknownLayout, fmt.Sprintf(format, args...))
}

// 不以http开头的链接补全为站点绝对地址，其余原样返回
func ResolveURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return BaseURL + href
}

const (
	dateTimeLayout = "1/2/2006-3:04PM"
	dateLayout     = "1/2/2006"
	isoDateLayout  = "2006-1-2"
)

// 先尝试"MM/DD/YYYY-hh:mmAM"格式，失败后退回"MM/DD/YYYY"
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(dateTimeLayout, strings.ToUpper(s)); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseISODate(s string) (time.Time, error) {
	return time.Parse(isoDateLayout, s)
}

// 将选择集拆成逐个元素的选择集，便于在循环中返回错误
func nodes(sel *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, sel.Length())
	for i := range sel.Nodes {
		out = append(out, sel.Eq(i))
	}
	return out
}

func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// 按文档顺序返回所有去除首尾空白后非空的文本节点
func strippedStrings(sel *goquery.Selection) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				out = append(out, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

/*
输入一个包含锚点的元素，输出锚点链接列表和一个错误

链接文本去除首尾空白，地址通过ResolveURL补全，缺少href属性的锚点视为未知结构
*/
func anchorLinks(sel *goquery.Selection) ([]bill.Link, error) {
	links := []bill.Link{}
	for _, a := range nodes(sel.Find("a")) {
		href, ok := a.Attr("href")
		if !ok {
			return nil, layoutError("anchor without href: %q", text(a))
		}
		links = append(links, bill.Link{Text: text(a), URL: ResolveURL(href)})
	}
	return links, nil
}

// 列名到字段名的映射，同时描述了一种已知的表格布局
type columnMap map[string]string

// 列名集合与布局完全一致时匹配，重复列名按集合处理
func (m columnMap) matches(cols []string) bool {
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, ok := m[c]; !ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return len(seen) == len(m)
}

func (m columnMap) fields(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = m[c]
	}
	return out
}

// 读取面板中表头第一行的列名，小写并去除空白；缺少thead或tr时ok为false
func headerColumns(panel *goquery.Selection) (cols []string, ok bool) {
	head := panel.Find("thead").First()
	if head.Length() == 0 {
		return nil, false
	}
	row := head.Find("tr").First()
	if row.Length() == 0 {
		return nil, false
	}
	for _, th := range nodes(row.Find("th")) {
		cols = append(cols, strings.ToLower(text(th)))
	}
	return cols, true
}

// 一行单元格，按字段名索引
type rowCells map[string]*goquery.Selection

// 按字段顺序与单元格一一对应，多出的一侧被忽略
func zipCells(fields []string, cells []*goquery.Selection) rowCells {
	out := make(rowCells, len(fields))
	for i := 0; i < len(fields) && i < len(cells); i++ {
		out[fields[i]] = cells[i]
	}
	return out
}

func (r rowCells) get(field string) (*goquery.Selection, error) {
	c, ok := r[field]
	if !ok || c == nil {
		return nil, layoutError("row has no %q cell", field)
	}
	return c, nil
}

// 面板的tbody中的所有行，缺少tbody时为空
func bodyRows(panel *goquery.Selection) []*goquery.Selection {
	return nodes(panel.Find("tbody").First().Find("tr"))
}

func stringPtr(s string) *string {
	return &s
}
