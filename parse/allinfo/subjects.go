package allinfo

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

const privateLegislation = "Private Legislation"

// 主题栏的解析结果，PolicyArea为校验与回填之后的政策领域
type Subjects struct {
	Subjects   []string
	PolicyArea *string
}

/*
输入一个All Info页面文档和tertiary栏记录的政策领域，输出主题解析结果和一个错误

侧栏中的政策领域至多一项且必须与已记录的一致；未记录政策领域而主题中含有"Private Legislation"时回填
*/
func (p *Parser) Subjects(doc *goquery.Document, policyArea *string) (Subjects, error) {
	out := Subjects{Subjects: []string{}, PolicyArea: policyArea}
	panel := doc.Find("div#subjects-content").First()
	if panel.Length() == 0 {
		return out, nil
	}

	lis := panel.Find("div.search-column-nav").First().Find("li")
	switch lis.Length() {
	case 0:
	case 1:
		got := text(lis)
		if policyArea == nil || *policyArea != got {
			return out, fmt.Errorf("%w: recorded %s, subjects panel %q", ErrPolicyAreaMismatch, quoteOrNil(policyArea), got)
		}
	default:
		return out, layoutError("%d policy areas", lis.Length())
	}

	main := panel.Find("div.search-column-main").First()
	if main.Length() == 0 {
		return out, nil
	}
	for _, li := range nodes(main.Find("li")) {
		out.Subjects = append(out.Subjects, text(li))
	}

	if out.PolicyArea == nil && contains(out.Subjects, privateLegislation) {
		out.PolicyArea = stringPtr(privateLegislation)
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func quoteOrNil(s *string) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("%q", *s)
}
