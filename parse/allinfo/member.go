package allinfo

// 解析发起人与联署人的身份字符串，形如"Rep. Pelosi, Nancy [D-CA-12] (Introduced 01/03/2021)"

import (
	"fmt"
	"strings"

	"github.com/dszqbsm/congress/bill"
)

const privateLegislationMarker = "(Private Legislation)"

func matchTitle(s string) (bill.MemberTitle, error) {
	for _, t := range bill.MemberTitles {
		if strings.HasPrefix(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: no known title in %q", ErrInvalidMember, s)
}

// 发起人字符串：额外去除私人立法标记和末尾的提出日期括注
func ParseSponsor(s string) (bill.Member, error) {
	title, err := matchTitle(s)
	if err != nil {
		return bill.Member{}, err
	}
	if strings.Contains(s, privateLegislationMarker) {
		s = strings.TrimSpace(strings.ReplaceAll(s, privateLegislationMarker, ""))
	}
	// TrimLeft按字符集而非前缀去除头衔
	s = strings.TrimSpace(strings.TrimLeft(s, string(title)))
	if i := strings.LastIndex(s, " ("); i >= 0 {
		s = s[:i]
	} else {
		s = ""
	}

	name, pos, ok := strings.Cut(s, " [")
	if !ok {
		return bill.Member{}, fmt.Errorf("%w: no position in sponsor %q", ErrInvalidMember, s)
	}
	pos, _, _ = strings.Cut(pos, " [")
	pos = strings.TrimSpace(strings.TrimRight(pos, "]"))
	return newMember(title, name, pos)
}

// 联署人字符串：位置标记取第一个"]"之前的部分，之后的原始联署人星号等被丢弃
func ParseCosponsor(s string) (bill.Member, error) {
	title, err := matchTitle(s)
	if err != nil {
		return bill.Member{}, err
	}
	s = strings.TrimSpace(strings.TrimLeft(s, string(title)))

	name, pos, ok := strings.Cut(s, " [")
	if !ok {
		return bill.Member{}, fmt.Errorf("%w: no position in cosponsor %q", ErrInvalidMember, s)
	}
	pos, _, _ = strings.Cut(pos, "]")
	pos = strings.TrimSpace(pos)
	return newMember(title, name, pos)
}

func newMember(title bill.MemberTitle, name, pos string) (bill.Member, error) {
	m := bill.Member{Title: title}

	// {party}-{state} 或 {party}-{state}-{district}
	parts := strings.Split(pos, "-")
	switch len(parts) - 1 {
	case 1:
		m.Party, m.State = parts[0], parts[1]
	case 2:
		m.Party, m.State = parts[0], parts[1]
		m.District = stringPtr(parts[2])
	default:
		return bill.Member{}, fmt.Errorf("%w: position %q", ErrInvalidMember, pos)
	}

	names := strings.Split(name, ", ")
	if len(names) < 2 {
		return bill.Member{}, fmt.Errorf("%w: name %q", ErrInvalidMember, name)
	}
	m.LastName = names[0]
	// 名在前姓在后的简单拼接，复姓与后缀不做处理
	m.FullName = names[1] + " " + names[0]
	return m, nil
}
