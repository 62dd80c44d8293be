package allinfo

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
)

var committeeColumns = columnMap{
	"committee / subcommittee": "name",
	"date":                     "date",
	"activity":                 "activity",
	"related documents":        "related documents",
}

// 委员会表中th单元格是稀疏的，没有th的行沿用上一个出现过的委员会
type committeeHeader struct {
	name           *goquery.Selection
	isSubcommittee bool
}

// 遇到带th的行时更新当前委员会，否则原样返回
func (h committeeHeader) advance(row *goquery.Selection) committeeHeader {
	th := row.Find("th").First()
	if th.Length() == 0 {
		return h
	}
	return committeeHeader{name: th, isSubcommittee: row.HasClass("subcommittee")}
}

/*
输入一个All Info页面文档，输出委员会活动列表和一个错误

只接受committee / subcommittee、date、activity、related documents一种列布局；日期无法解析时置为nil而不报错
*/
func (p *Parser) Committees(doc *goquery.Document) ([]bill.CommitteeActivity, error) {
	committees := []bill.CommitteeActivity{}
	panel := doc.Find("div#committees-content").First()
	if panel.Length() == 0 {
		return committees, nil
	}
	cols, ok := headerColumns(panel)
	if !ok {
		return committees, nil
	}
	if !committeeColumns.matches(cols) {
		return nil, layoutError("committee columns %q", cols)
	}
	fields := committeeColumns.fields(cols)

	var cur committeeHeader
	for _, row := range bodyRows(panel) {
		cur = cur.advance(row)
		if cur.name == nil {
			return nil, layoutError("committee row before any committee header")
		}
		activity, err := parseCommitteeRow(cur, zipCells(fields, append([]*goquery.Selection{cur.name}, nodes(row.Find("td"))...)))
		if err != nil {
			return nil, err
		}
		committees = append(committees, activity)
	}
	return committees, nil
}

func parseCommitteeRow(h committeeHeader, cells rowCells) (bill.CommitteeActivity, error) {
	var c [4]*goquery.Selection
	for i, f := range []string{"name", "date", "activity", "related documents"} {
		var err error
		if c[i], err = cells.get(f); err != nil {
			return bill.CommitteeActivity{}, err
		}
	}
	docs, err := anchorLinks(c[3])
	if err != nil {
		return bill.CommitteeActivity{}, err
	}

	out := bill.CommitteeActivity{
		Name:             text(c[0]),
		Activity:         text(c[2]),
		RelatedDocuments: docs,
		IsSubcommittee:   h.isSubcommittee,
	}
	if date, err := parseDateTime(text(c[1])); err == nil {
		out.Date = &date
	}
	return out, nil
}
