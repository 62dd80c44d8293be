package allinfo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
)

const (
	summaryIDPrefix = "summary-"
	shownHereMarker = "Shown Here:"
)

// 输入一个All Info页面文档，输出摘要列表和一个错误
func (p *Parser) Summaries(doc *goquery.Document) ([]bill.Summary, error) {
	summaries := []bill.Summary{}
	panel := doc.Find("div#allSummaries-content").First()
	if panel.Length() == 0 {
		return summaries, nil
	}

	for _, div := range nodes(panel.ChildrenFiltered("div")) {
		id, _ := div.Attr("id")
		if !strings.HasPrefix(id, summaryIDPrefix) {
			continue
		}
		var paragraphs []string
		div.Find("p").Each(func(_ int, s *goquery.Selection) {
			paragraphs = append(paragraphs, s.Text())
		})
		summaries = append(summaries, bill.Summary{
			Title: summaryTitle(text(div.Find("h3").First())),
			Text:  strings.Join(paragraphs, "\n"),
		})
	}
	return summaries, nil
}

// "Shown Here: Introduced in House (01/04/2021)" -> "Introduced in House"
func summaryTitle(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, shownHereMarker, ""))
	s, _, _ = strings.Cut(s, "(")
	return strings.TrimSpace(s)
}
