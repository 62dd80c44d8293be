package allinfo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
)

// 概览表的解析结果，只有页面上出现的字段才会合并到记录
type Overview struct {
	Sponsor *bill.Sponsor
	Tracker []bill.TrackerStep
	Reports []bill.Link
}

func (o Overview) merge(rec *bill.Record) {
	if o.Sponsor != nil {
		rec.Sponsor = o.Sponsor
	}
	if o.Tracker != nil {
		rec.Tracker = o.Tracker
	}
	if o.Reports != nil {
		rec.Reports = o.Reports
	}
}

// 概览表中的键类型
type overviewKey int

const (
	keyUnknown overviewKey = iota
	keySponsor
	keyIgnored
	keyTracker
	keyReports
)

var ignoredOverviewKeys = map[string]struct{}{
	"committees":               {},
	"latest_action":            {},
	"latest_action_(modified)": {},
	"roll_call_votes":          {},
	"committee_meetings":       {},
	"committee_prints":         {},
	"notes":                    {},
}

func classifyOverviewKey(key string) overviewKey {
	if key == "sponsor" {
		return keySponsor
	}
	if _, ok := ignoredOverviewKeys[key]; ok {
		return keyIgnored
	}
	if strings.HasPrefix(key, "tracker") {
		return keyTracker
	}
	if key == "committee_reports" {
		return keyReports
	}
	return keyUnknown
}

// 标签文本转为小写下划线形式的键
func normalizeOverviewKey(label string) string {
	key := strings.TrimRight(strings.TrimSpace(label), ":")
	return strings.ReplaceAll(strings.ToLower(key), " ", "_")
}

// 进度步骤字段的重命名规则
var trackerFieldNames = []struct{ from, to string }{
	{"actionDate", "date"},
	{"description", "type"},
	{"displayText", "text"},
	{"externalActionCode", "code"},
	{"chamberOfAction", "chamber"},
}

/*
输入一个All Info页面文档，输出概览解析结果和一个错误

每一行可以是th+td或td+td两种形式，标签规范化为键后分派：sponsor解析发起人，忽略列表中的键跳过，tracker开头的键解析进度条，committee_reports收集报告链接，其他键返回错误
*/
func (p *Parser) Overview(doc *goquery.Document) (Overview, error) {
	var out Overview
	table := doc.Find("div.overview_wrapper.bill").First().
		Find("div.overview").First().
		Find("table").First()
	if table.Length() == 0 {
		p.logger.Debug("overview table not found")
		return out, nil
	}

	for _, row := range nodes(table.Find("tr")) {
		th := row.Find("th").First()
		tds := row.Find("td")
		var k, v *goquery.Selection
		switch {
		case th.Length() == 0 && tds.Length() == 2:
			k, v = tds.Eq(0), tds.Eq(1)
		case th.Length() > 0 && tds.Length() == 1:
			k, v = th, tds.Eq(0)
		default:
			return out, layoutError("overview row with %d th and %d td", row.Find("th").Length(), tds.Length())
		}

		key := normalizeOverviewKey(k.Text())
		switch classifyOverviewKey(key) {
		case keySponsor:
			sponsor, err := parseSponsorCell(v)
			if err != nil {
				return out, err
			}
			out.Sponsor = sponsor
		case keyIgnored:
			continue
		case keyTracker:
			steps, err := parseTracker(v)
			if err != nil {
				return out, err
			}
			out.Tracker = steps
		case keyReports:
			out.Reports = []bill.Link{}
			for _, a := range nodes(v.Find("a")) {
				href, ok := a.Attr("href")
				if !ok {
					return out, layoutError("committee report without href")
				}
				out.Reports = append(out.Reports, bill.Link{Title: a.Text(), URL: ResolveURL(href)})
			}
		default:
			return out, layoutError("overview key %q", key)
		}
	}
	return out, nil
}

func parseSponsorCell(v *goquery.Selection) (*bill.Sponsor, error) {
	m, err := ParseSponsor(v.Text())
	if err != nil {
		return nil, err
	}
	href, ok := v.Find("a").First().Attr("href")
	if !ok {
		return nil, layoutError("sponsor without profile link")
	}
	segments := strings.Split(href, "/")
	return &bill.Sponsor{
		Member:     m,
		URL:        ResolveURL(href),
		BioguideID: segments[len(segments)-1],
	}, nil
}

func parseTracker(v *goquery.Selection) ([]bill.TrackerStep, error) {
	steps := []bill.TrackerStep{}
	for _, li := range nodes(v.Find("ol.bill_progress li")) {
		div := li.Find("div.sol-step-info").First()
		if div.Length() == 0 {
			continue
		}
		info, err := ParsePHPArray(div.Text())
		if err != nil {
			return nil, err
		}

		fields := make(map[string]string, len(trackerFieldNames))
		for _, f := range trackerFieldNames {
			val, ok := info[f.from]
			if !ok {
				return nil, layoutError("tracker step without %q", f.from)
			}
			fields[f.to] = val
			delete(info, f.from)
		}
		date, err := parseISODate(fields["date"])
		if err != nil {
			return nil, err
		}

		step := bill.TrackerStep{
			Date:    date,
			Type:    fields["type"],
			Text:    fields["text"],
			Code:    fields["code"],
			Chamber: fields["chamber"],
		}
		if len(info) > 0 {
			step.Extra = info
		}
		steps = append(steps, step)
	}
	return steps, nil
}
