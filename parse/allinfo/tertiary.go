package allinfo

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
)

const (
	sectionMoreOnThisBill = "More on This Bill"
	sectionPolicyArea     = "Subject — Policy Area:"

	buttonConstAuthority   = "constAuthButton"
	buttonCBOEstimate      = "cboEstimateButton"
	buttonSupportingMember = "supportingMembersBtn"
)

// tertiary栏的解析结果，三个字段缺省为nil
type Tertiary struct {
	ConstitutionalAuthorityStatement *string
	CBOEstimates                     []bill.Link
	PolicyArea                       *string
}

/*
输入一个All Info页面文档，输出tertiary栏解析结果和一个错误

"More on This Bill"小节按锚点id分派到宪法授权声明或CBO估算的解析，supportingMembersBtn跳过，其他id返回错误；"Subject — Policy Area:"小节取第一个列表项作为政策领域
*/
func (p *Parser) Tertiary(doc *goquery.Document) (Tertiary, error) {
	var out Tertiary
	panel := doc.Find("div.overview_wrapper.bill").First().Find("div.tertiary").First()

	for _, div := range nodes(panel.Find("div.tertiary_section")) {
		h3 := div.Find("h3").First()
		if h3.Length() == 0 {
			continue
		}
		switch text(h3) {
		case sectionMoreOnThisBill:
			for _, li := range nodes(div.Find("li")) {
				id, ok := li.Find("a").First().Attr("id")
				if !ok {
					return out, layoutError("%s item without button id", sectionMoreOnThisBill)
				}
				switch id {
				case buttonConstAuthority:
					cas, err := parseAuthorityStatement(li)
					if err != nil {
						return out, err
					}
					out.ConstitutionalAuthorityStatement = &cas
				case buttonCBOEstimate:
					estimates, err := parseCBOEstimates(li)
					if err != nil {
						return out, err
					}
					out.CBOEstimates = estimates
				case buttonSupportingMember:
					// 只出现在极少数议案中
				default:
					return out, layoutError("%s button id %q", sectionMoreOnThisBill, id)
				}
			}
		case sectionPolicyArea:
			li := div.Find("li").First()
			if li.Length() == 0 {
				return out, layoutError("policy area section without items")
			}
			out.PolicyArea = stringPtr(text(li))
		}
	}
	return out, nil
}
