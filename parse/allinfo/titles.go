package allinfo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
	"go.uber.org/zap"
)

var (
	titleChambers = []string{"house", "senate"}
	// 三块布局时各子块的首个class
	titleBlockClasses = []string{"shortTitles", "titles-row", "officialTitles"}
)

/*
输入一个All Info页面文档，输出标题列表和一个错误

titles_main下只能有一个或三个子块，三块时逐个校验class，并只处理后两块；每块中分别查找众议院与参议院的栏目，h4后接p为全称标题，h5后接ul为部分标题
*/
func (p *Parser) Titles(doc *goquery.Document) ([]bill.Title, error) {
	titles := []bill.Title{}
	main := doc.Find("div#titles-content").First().Find("div#titles_main").First()
	if main.Length() == 0 {
		return titles, nil
	}

	blocks := nodes(main.ChildrenFiltered("div"))
	switch len(blocks) {
	case 3:
		for i, b := range blocks {
			class, _ := b.Attr("class")
			fields := strings.Fields(class)
			if len(fields) == 0 || fields[0] != titleBlockClasses[i] {
				return nil, layoutError("title block %d class %q, want %q", i, class, titleBlockClasses[i])
			}
		}
		blocks = blocks[1:]
	case 1:
	default:
		return nil, layoutError("%d title blocks", len(blocks))
	}

	for _, block := range blocks {
		for _, chamber := range titleChambers {
			col := block.Find("div." + chamber + "-column").First()
			if col.Length() == 0 {
				p.logger.Warn("chamber titles column not found", zap.String("chamber", chamber))
				continue
			}
			titles = append(titles, fullTitles(col, chamber)...)
			titles = append(titles, partialTitles(col, chamber)...)
		}
	}
	return titles, nil
}

func fullTitles(col *goquery.Selection, chamber string) []bill.Title {
	var out []bill.Title
	for _, h4 := range nodes(col.Find("h4")) {
		next := h4.Next()
		if goquery.NodeName(next) != "p" {
			continue
		}
		heading := h4.Text()
		seen := make(map[string]struct{})
		for _, s := range strippedStrings(next) {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, bill.Title{
				Scope:   bill.ScopeFull,
				Type:    titleType(heading),
				Chamber: chamber,
				Title:   s,
				Label:   titleLabel(heading),
			})
		}
	}
	return out
}

func partialTitles(col *goquery.Selection, chamber string) []bill.Title {
	var out []bill.Title
	for _, h5 := range nodes(col.Find("h5")) {
		next := h5.Next()
		if goquery.NodeName(next) != "ul" {
			continue
		}
		heading := h5.Text()
		for _, li := range nodes(next.Find("li")) {
			out = append(out, bill.Title{
				Scope:   bill.ScopePartial,
				Type:    titleType(heading),
				Chamber: chamber,
				Title:   li.Text(),
				Label:   titleLabel(heading),
			})
		}
	}
	return out
}

func titleType(heading string) bill.TitleType {
	if strings.Contains(heading, "Official") {
		return bill.TitleOfficial
	}
	return bill.TitleShort
}

// "Short Titles as Passed House for portions of this bill" -> "Passed House"
func titleLabel(heading string) string {
	parts := strings.Split(heading, "as")
	label, _, _ := strings.Cut(parts[len(parts)-1], "for")
	return strings.TrimSpace(label)
}
