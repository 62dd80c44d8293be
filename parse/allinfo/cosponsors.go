package allinfo

import (
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
)

type cosponsorLayout int

const (
	cosponsorsCurrent cosponsorLayout = iota
	cosponsorsWithdrawn
)

var cosponsorLayouts = map[cosponsorLayout]columnMap{
	cosponsorsCurrent: {
		"cosponsor":        "cosponsor",
		"date cosponsored": "date",
	},
	cosponsorsWithdrawn: {
		"cosponsors who withdrew": "cosponsor",
		"date cosponsored":        "date",
		"date withdrawn":          "date withdrawn",
		"cr explanation":          "cr explanation",
	},
}

func detectCosponsorLayout(cols []string) (cosponsorLayout, []string, error) {
	for _, l := range []cosponsorLayout{cosponsorsCurrent, cosponsorsWithdrawn} {
		if cosponsorLayouts[l].matches(cols) {
			return l, cosponsorLayouts[l].fields(cols), nil
		}
	}
	return 0, nil, layoutError("cosponsor columns %q", cols)
}

/*
输入一个All Info页面文档，输出联署人列表和一个错误

面板、表头或表头行缺失时返回空列表；已撤回联署的表格额外解析撤回日期与国会记录中的说明链接
*/
func (p *Parser) Cosponsors(doc *goquery.Document) ([]bill.Cosponsor, error) {
	cosponsors := []bill.Cosponsor{}
	panel := doc.Find("div#cosponsors-content").First()
	if panel.Length() == 0 {
		return cosponsors, nil
	}
	cols, ok := headerColumns(panel)
	if !ok {
		return cosponsors, nil
	}
	layout, fields, err := detectCosponsorLayout(cols)
	if err != nil {
		return nil, err
	}

	for _, row := range bodyRows(panel) {
		cells := zipCells(fields, nodes(row.Find("td")))
		c, err := parseCosponsorRow(cells)
		if err != nil {
			return nil, err
		}
		if layout == cosponsorsWithdrawn {
			if c.Withdrawn, err = parseWithdrawal(cells); err != nil {
				return nil, err
			}
		}
		cosponsors = append(cosponsors, c)
	}
	return cosponsors, nil
}

func parseCosponsorRow(cells rowCells) (bill.Cosponsor, error) {
	who, err := cells.get("cosponsor")
	if err != nil {
		return bill.Cosponsor{}, err
	}
	m, err := ParseCosponsor(text(who))
	if err != nil {
		return bill.Cosponsor{}, err
	}
	date, err := dateCell(cells, "date")
	if err != nil {
		return bill.Cosponsor{}, err
	}
	return bill.Cosponsor{Cosponsor: m, Date: date}, nil
}

func parseWithdrawal(cells rowCells) (*bill.Withdrawal, error) {
	date, err := dateCell(cells, "date withdrawn")
	if err != nil {
		return nil, err
	}
	expl, err := cells.get("cr explanation")
	if err != nil {
		return nil, err
	}
	href, ok := expl.Find("a").First().Attr("href")
	if !ok {
		return nil, layoutError("withdrawal explanation without link")
	}
	return &bill.Withdrawal{
		Date:        date,
		Explanation: bill.Link{Text: text(expl), URL: href},
	}, nil
}

func dateCell(cells rowCells, field string) (time.Time, error) {
	c, err := cells.get(field)
	if err != nil {
		return time.Time{}, err
	}
	return parseDate(text(c))
}
