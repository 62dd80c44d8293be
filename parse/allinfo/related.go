package allinfo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
)

const (
	// "Relationships to H.R.1"等列名统一为该前缀
	relationshipsToColumn = "relationships to"
	relatedExtraRowClass  = "relatedbill_exrow"
	procedurallyRelated   = "Procedurally related"
)

var relatedColumns = columnMap{
	"bill":                        "bill",
	"latest title":                "title",
	relationshipsToColumn:         "relationship",
	"relationships identified by": "by",
	"latest action":               "latest action",
}

func normalizeRelatedColumns(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		if strings.HasPrefix(c, relationshipsToColumn) {
			c = relationshipsToColumn
		}
		out[i] = c
	}
	return out
}

/*
输入一个All Info页面文档，输出相关议案列表和一个错误

跳过relatedbill_exrow附加行；关系以"Procedurally related"开头时折叠为该固定字符串
*/
func (p *Parser) Related(doc *goquery.Document) ([]bill.RelatedBill, error) {
	related := []bill.RelatedBill{}
	panel := doc.Find("div#relatedBills-content").First()
	if panel.Length() == 0 {
		return related, nil
	}
	cols, ok := headerColumns(panel)
	if !ok {
		return related, nil
	}
	cols = normalizeRelatedColumns(cols)
	if !relatedColumns.matches(cols) {
		return nil, layoutError("related bill columns %q", cols)
	}
	fields := relatedColumns.fields(cols)

	for _, row := range bodyRows(panel) {
		if row.HasClass(relatedExtraRowClass) {
			continue
		}
		r, err := parseRelatedRow(zipCells(fields, nodes(row.Find("td"))))
		if err != nil {
			return nil, err
		}
		related = append(related, r)
	}
	return related, nil
}

func parseRelatedRow(cells rowCells) (bill.RelatedBill, error) {
	var c [3]*goquery.Selection
	for i, f := range []string{"bill", "relationship", "by"} {
		var err error
		if c[i], err = cells.get(f); err != nil {
			return bill.RelatedBill{}, err
		}
	}
	href, ok := c[0].Find("a").First().Attr("href")
	if !ok {
		return bill.RelatedBill{}, layoutError("related bill without link")
	}
	if !strings.Contains(href, "http") {
		href = BaseURL + href
	}
	relationship := text(c[1])
	if strings.HasPrefix(relationship, procedurallyRelated) {
		relationship = procedurallyRelated
	}
	return bill.RelatedBill{URL: href, Relationship: relationship, By: text(c[2])}, nil
}
