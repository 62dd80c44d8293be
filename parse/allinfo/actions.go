package allinfo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
)

// 动作表的已知布局
type actionLayout int

const (
	// date / chamber / all actions
	actionsWithChamber actionLayout = iota
	// date / all actions，执行方以"Action By:"标记内嵌在动作文本中
	actionsInlineBy
)

var actionLayouts = map[actionLayout]columnMap{
	actionsWithChamber: {"date": "date", "chamber": "by", "all actions": "action"},
	actionsInlineBy:    {"date": "date", "all actions": "action"},
}

const actionByPrefix = "Action By:"

func detectActionLayout(cols []string) (actionLayout, []string, error) {
	for _, l := range []actionLayout{actionsWithChamber, actionsInlineBy} {
		if actionLayouts[l].matches(cols) {
			return l, actionLayouts[l].fields(cols), nil
		}
	}
	return 0, nil, layoutError("action columns %q", cols)
}

/*
输入一个All Info页面文档，输出动作列表和一个错误

面板或表头缺失时返回空列表；依据列名集合选择布局，其他列名集合返回错误
*/
func (p *Parser) Actions(doc *goquery.Document) ([]bill.Action, error) {
	actions := []bill.Action{}
	panel := doc.Find("div#allActions-content").First()
	if panel.Length() == 0 {
		return actions, nil
	}
	cols, ok := headerColumns(panel)
	if !ok {
		return actions, nil
	}
	layout, fields, err := detectActionLayout(cols)
	if err != nil {
		return nil, err
	}

	for _, row := range bodyRows(panel) {
		cells := zipCells(fields, nodes(row.Find("td")))
		var a bill.Action
		switch layout {
		case actionsWithChamber:
			a, err = parseChamberAction(cells)
		case actionsInlineBy:
			a, err = parseInlineAction(cells)
		}
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func parseChamberAction(cells rowCells) (bill.Action, error) {
	date, by, action, err := actionCells(cells, "date", "by", "action")
	if err != nil {
		return bill.Action{}, err
	}
	return newAction(date, stringPtr(text(by)), text(action), action)
}

// 动作文本中的span为执行方标记，其文本从动作文本中去除，前缀之后的部分作为执行方
func parseInlineAction(cells rowCells) (bill.Action, error) {
	date, _, action, err := actionCells(cells, "date", "", "action")
	if err != nil {
		return bill.Action{}, err
	}
	actionText := text(action)

	var by *string
	if span := action.Find("span").First(); span.Length() > 0 {
		marker := text(span)
		if marker != "" {
			if !strings.HasPrefix(marker, actionByPrefix) {
				return bill.Action{}, layoutError("action by marker %q", marker)
			}
			actionText = strings.TrimSpace(strings.ReplaceAll(actionText, marker, ""))
			by = stringPtr(strings.TrimSpace(strings.ReplaceAll(marker, actionByPrefix, "")))
		}
	}
	return newAction(date, by, actionText, action)
}

func actionCells(cells rowCells, names ...string) (date, by, action *goquery.Selection, err error) {
	out := make([]*goquery.Selection, len(names))
	for i, n := range names {
		if n == "" {
			continue
		}
		if out[i], err = cells.get(n); err != nil {
			return nil, nil, nil, err
		}
	}
	return out[0], out[1], out[2], nil
}

func newAction(dateCell *goquery.Selection, by *string, actionText string, actionCell *goquery.Selection) (bill.Action, error) {
	date, err := parseDateTime(text(dateCell))
	if err != nil {
		return bill.Action{}, err
	}
	links, err := anchorLinks(actionCell)
	if err != nil {
		return bill.Action{}, err
	}
	return bill.Action{Date: date, By: by, Action: actionText, Links: links}, nil
}
