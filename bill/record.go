package bill

import "time"

// 一条议案记录，由各个解析器分段填充后整体保存
type Record struct {
	Key    `yaml:",inline"`
	Source string `json:"source" yaml:"source"`

	Sponsor *Sponsor      `json:"sponsor,omitempty" yaml:"sponsor,omitempty"`
	Tracker []TrackerStep `json:"tracker" yaml:"tracker"`
	Reports []Link        `json:"reports" yaml:"reports"`

	ConstitutionalAuthorityStatement *string `json:"constitutional_authority_statement" yaml:"constitutional_authority_statement"`
	CBOEstimates                     []Link  `json:"cbo_estimates" yaml:"cbo_estimates"`
	PolicyArea                       *string `json:"policy_area" yaml:"policy_area"`

	Titles     []Title             `json:"titles" yaml:"titles"`
	Actions    []Action            `json:"actions" yaml:"actions"`
	Cosponsors []Cosponsor         `json:"cosponsors" yaml:"cosponsors"`
	Committees []CommitteeActivity `json:"committees" yaml:"committees"`
	Related    []RelatedBill       `json:"related" yaml:"related"`
	Subjects   []string            `json:"subjects" yaml:"subjects"`
	Summaries  []Summary           `json:"summaries" yaml:"summaries"`
	Texts      []TextVersion       `json:"texts,omitempty" yaml:"texts,omitempty"`

	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// 创建一条只有主键与来源地址的空记录
func NewRecord(key Key) *Record {
	return &Record{Key: key, Source: key.SourceURL()}
}

// 议员头衔，取值为页面上的缩写
type MemberTitle string

const (
	Representative       MemberTitle = "Rep."
	Senator              MemberTitle = "Sen."
	Delegate             MemberTitle = "Del."
	ResidentCommissioner MemberTitle = "Resident Commissioner"
)

// 合法头衔的固定集合
var MemberTitles = []MemberTitle{Representative, Senator, Delegate, ResidentCommissioner}

// 议员身份
type Member struct {
	Title    MemberTitle `json:"title" yaml:"title"`
	Party    string      `json:"party" yaml:"party"`
	State    string      `json:"state" yaml:"state"`
	District *string     `json:"district" yaml:"district"`
	LastName string      `json:"last_name" yaml:"last_name"`
	FullName string      `json:"full_name" yaml:"full_name"`
}

type Sponsor struct {
	Member     `yaml:",inline"`
	URL        string `json:"url" yaml:"url"`
	BioguideID string `json:"bioguide_id" yaml:"bioguide_id"`
}

// 立法进度条上的一个步骤
type TrackerStep struct {
	Date    time.Time         `json:"date" yaml:"date"`
	Type    string            `json:"type" yaml:"type"`
	Text    string            `json:"text" yaml:"text"`
	Code    string            `json:"code" yaml:"code"`
	Chamber string            `json:"chamber" yaml:"chamber"`
	Extra   map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// 页面中的一个链接
type Link struct {
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// 委员会报告与CBO估算使用title而非text
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	URL   string `json:"url" yaml:"url"`
}

type Action struct {
	Date   time.Time `json:"date" yaml:"date"`
	By     *string   `json:"by" yaml:"by"`
	Action string    `json:"action" yaml:"action"`
	Links  []Link    `json:"links" yaml:"links"`
}

type Cosponsor struct {
	Cosponsor Member      `json:"cosponsor" yaml:"cosponsor"`
	Date      time.Time   `json:"date" yaml:"date"`
	Withdrawn *Withdrawal `json:"withdrawn" yaml:"withdrawn"`
}

type Withdrawal struct {
	Date        time.Time `json:"date" yaml:"date"`
	Explanation Link      `json:"explanation" yaml:"explanation"`
}

type CommitteeActivity struct {
	Name             string     `json:"name" yaml:"name"`
	Date             *time.Time `json:"date" yaml:"date"`
	Activity         string     `json:"activity" yaml:"activity"`
	RelatedDocuments []Link     `json:"related_documents" yaml:"related_documents"`
	IsSubcommittee   bool       `json:"is_subcommittee" yaml:"is_subcommittee"`
}

type RelatedBill struct {
	URL          string `json:"url" yaml:"url"`
	Relationship string `json:"relationship" yaml:"relationship"`
	By           string `json:"by" yaml:"by"`
}

type TitleScope string

const (
	ScopeFull    TitleScope = "full"
	ScopePartial TitleScope = "partial"
)

type TitleType string

const (
	TitleOfficial TitleType = "official"
	TitleShort    TitleType = "short"
)

type Title struct {
	Scope   TitleScope `json:"scope" yaml:"scope"`
	Type    TitleType  `json:"type" yaml:"type"`
	Chamber string     `json:"chamber" yaml:"chamber"`
	Title   string     `json:"title" yaml:"title"`
	Label   string     `json:"label" yaml:"label"`
}

type Summary struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
}

// 议案文本的一个版本，Path为归档中纯文本文件的相对路径
type TextVersion struct {
	Version string `json:"version" yaml:"version"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Formats []Link `json:"formats,omitempty" yaml:"formats,omitempty"`
}
