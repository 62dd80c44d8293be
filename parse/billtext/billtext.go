package billtext

// 解析议案的Text页面：版本选择器、纯文本正文以及PDF/XML等格式链接

import (
	"errors"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/parse/allinfo"
	"golang.org/x/net/html"
)

// Text页面标题的固定前缀
const TitlePrefix = "Text - "

// 单一版本的页面，正文直接来自页面本身
const DefaultVersion = "text"

// 公法版本没有独立的XML文本
const publicLawVersion = "pl"

var (
	ErrInvalidTitle = errors.New("invalid text page title")

	titleExpr    = xpath.MustCompile(`//head/title`)
	optionExpr   = xpath.MustCompile(`//div[@id="textSelector"]//option`)
	textExpr     = xpath.MustCompile(`//pre[@id="billTextContainer"]`)
	formatLiExpr = xpath.MustCompile(`//ul[contains(concat(" ", normalize-space(@class), " "), " cdg-summary-wrapper-list ")]/li`)
	anchorExpr   = xpath.MustCompile(`.//a`)
)

// 版本选择器中的一个版本，URL指向该版本的纯文本格式页面
type Version struct {
	Name string
	URL  string
}

// 一个Text页面的解析结果
type Page struct {
	Title    string
	Versions []Version
	// pre#billTextContainer的文本，页面没有正文时为nil
	Text    *string
	formats []format
}

type format struct {
	label string
	href  string
}

/*
输入一个Text页面的HTML，输出解析结果和一个错误

只校验页面能否解析，标题前缀由调用方通过Valid判断
*/
func Parse(r io.Reader) (*Page, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	return parseNode(doc), nil
}

func parseNode(doc *html.Node) *Page {
	p := &Page{}
	if t := htmlquery.QuerySelector(doc, titleExpr); t != nil {
		p.Title = strings.TrimSpace(htmlquery.InnerText(t))
	}

	for _, opt := range htmlquery.QuerySelectorAll(doc, optionExpr) {
		value := htmlquery.SelectAttr(opt, "value")
		if value == "" {
			continue
		}
		segments := strings.Split(value, "/")
		p.Versions = append(p.Versions, Version{
			Name: segments[len(segments)-1],
			URL:  allinfo.ResolveURL(value) + "?format=txt",
		})
	}

	if pre := htmlquery.QuerySelector(doc, textExpr); pre != nil {
		s := htmlquery.InnerText(pre)
		p.Text = &s
	}

	for _, li := range htmlquery.QuerySelectorAll(doc, formatLiExpr) {
		a := htmlquery.QuerySelector(li, anchorExpr)
		if a == nil || !htmlquery.ExistsAttr(a, "href") {
			continue
		}
		p.formats = append(p.formats, format{
			label: htmlquery.InnerText(li),
			href:  htmlquery.SelectAttr(a, "href"),
		})
	}
	return p
}

// 标题以"Text - "开头
func (p *Page) Valid() error {
	if !strings.HasPrefix(p.Title, TitlePrefix) {
		return ErrInvalidTitle
	}
	return nil
}

/*
输入版本名，输出该版本可下载的格式链接

取第一个文本含PDF的链接；XML取第一个文本含XML且链接不带查询参数的链接，公法版本不取XML
*/
func (p *Page) Formats(version string) []bill.Link {
	var out []bill.Link
	if href, ok := p.firstFormat("PDF", false); ok {
		out = append(out, bill.Link{Text: "PDF", URL: allinfo.BaseURL + href})
	}
	if version != publicLawVersion {
		if href, ok := p.firstFormat("XML", true); ok {
			out = append(out, bill.Link{Text: "XML", URL: allinfo.BaseURL + href})
		}
	}
	return out
}

func (p *Page) firstFormat(label string, plainOnly bool) (string, bool) {
	for _, f := range p.formats {
		if !strings.Contains(f.label, label) {
			continue
		}
		if plainOnly && strings.Contains(f.href, "?") {
			continue
		}
		return f.href, true
	}
	return "", false
}
