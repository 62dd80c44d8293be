package allinfo

// 宪法授权声明与CBO估算以转义后的HTML片段形式嵌在行内脚本"var msg = '...';"中

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	msgPrefix = "var msg = '"
	msgSuffix = "';"

	costEstimatesSearchPage = "Cost Estimates Search page"
)

// 取出元素内第一个脚本中的msg片段，并还原转义的双引号
func scriptMessage(sel *goquery.Selection) (string, error) {
	script := sel.Find("script").First()
	if script.Length() == 0 {
		return "", layoutError("no script in %q", text(sel))
	}
	src := script.Text()
	start := strings.Index(src, msgPrefix)
	if start < 0 {
		return "", layoutError("script without %q", msgPrefix)
	}
	start += len(msgPrefix)
	end := strings.Index(src[start:], msgSuffix)
	if end < 0 {
		return "", layoutError("script without closing %q", msgSuffix)
	}
	return strings.ReplaceAll(src[start:start+end], `\"`, `"`), nil
}

func parseFragment(s string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(s), body)
}

/*
输入包含授权声明按钮的列表项，输出声明纯文本和一个错误

片段重新解析后递归渲染：文本原样保留，br换行，a取其文本，h3结束当前层的渲染，ls-thn-eq与bullet递归进入，其他标签返回错误；最后去除以"["开头、以"]"结尾的引注行和空行
*/
func parseAuthorityStatement(li *goquery.Selection) (string, error) {
	msg, err := scriptMessage(li)
	if err != nil {
		return "", err
	}
	fragment, err := parseFragment(msg)
	if err != nil {
		return "", fmt.Errorf("parse authority statement: %w", err)
	}

	var b strings.Builder
	if err := renderAuthority(&b, fragment); err != nil {
		return "", err
	}

	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(b.String()), "\n") {
		if strings.HasPrefix(l, "[") || strings.HasSuffix(l, "]") || l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return strings.Join(lines, "\n"), nil
}

func renderAuthority(b *strings.Builder, ns []*html.Node) error {
	for _, n := range ns {
		switch n.Type {
		case html.TextNode, html.CommentNode:
			b.WriteString(n.Data)
			continue
		case html.ElementNode:
		default:
			continue
		}

		switch n.Data {
		case "br":
			b.WriteString("\n")
		case "a":
			b.WriteString(nodeText(n))
		case "h3":
			return nil
		case "ls-thn-eq", "bullet":
			if err := renderAuthority(b, children(n)); err != nil {
				return err
			}
		default:
			return layoutError("authority statement tag <%s>", n.Data)
		}
	}
	return nil
}

func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

// 收集片段中所有锚点，跳过指向估算检索页的那一个，地址保持原样
func parseCBOEstimates(li *goquery.Selection) ([]bill.Link, error) {
	msg, err := scriptMessage(li)
	if err != nil {
		return nil, err
	}
	frag, err := goquery.NewDocumentFromReader(strings.NewReader(msg))
	if err != nil {
		return nil, fmt.Errorf("parse cbo estimates: %w", err)
	}

	estimates := []bill.Link{}
	for _, a := range nodes(frag.Find("a")) {
		title := a.Text()
		if strings.Contains(title, costEstimatesSearchPage) {
			continue
		}
		href, ok := a.Attr("href")
		if !ok {
			return nil, layoutError("cbo estimate without href")
		}
		estimates = append(estimates, bill.Link{Title: title, URL: href})
	}
	return estimates, nil
}
