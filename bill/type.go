package bill

// 议案类型与议案唯一标识

import (
	"fmt"
	"strconv"
)

// 议案类型，取值为congress.gov网址中的类型路径段
type Type string

const (
	HouseBill                  Type = "house-bill"
	HouseResolution            Type = "house-resolution"
	HouseConcurrentResolution  Type = "house-concurrent-resolution"
	HouseJointResolution       Type = "house-joint-resolution"
	SenateBill                 Type = "senate-bill"
	SenateResolution           Type = "senate-resolution"
	SenateConcurrentResolution Type = "senate-concurrent-resolution"
	SenateJointResolution      Type = "senate-joint-resolution"
)

// 所有议案类型，顺序即处理顺序
var Types = []Type{
	HouseBill,
	HouseResolution,
	HouseConcurrentResolution,
	HouseJointResolution,
	SenateBill,
	SenateResolution,
	SenateConcurrentResolution,
	SenateJointResolution,
}

/*
输入一个字符串，输出对应的议案类型和一个错误

不在固定类型集合中的字符串返回错误
*/
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown bill type %q", s)
}

// 议案的持久化主键
type Key struct {
	Congress int  `json:"congress" yaml:"congress"`
	Type     Type `json:"type" yaml:"type"`
	Number   int  `json:"number" yaml:"number"`
}

func (k Key) String() string {
	return strconv.Itoa(k.Congress) + "-" + string(k.Type) + "-" + strconv.Itoa(k.Number)
}

// 议案all-info页面的地址，届次一律使用th后缀
func (k Key) SourceURL() string {
	return fmt.Sprintf("https://www.congress.gov/bill/%dth-congress/%s/%d/all-info/?allSummaries=show", k.Congress, k.Type, k.Number)
}

// 议案文本页面的地址
func (k Key) TextURL() string {
	return fmt.Sprintf("https://www.congress.gov/bill/%dth-congress/%s/%d/text/?format=txt", k.Congress, k.Type, k.Number)
}
