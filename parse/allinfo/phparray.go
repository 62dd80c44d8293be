package allinfo

import (
	"fmt"
	"strings"
)

const phpArraySeparator = "=>"

/*
输入一个PHP print_r格式的数组文本，输出键值映射和一个错误

文本形如"Array\n(\n    [key1] => value1\n    [key2] => value2\n)"，先按字符集剥去外层包装，再逐行按"=>"切分，键去除方括号与空格，值去除首尾空白

不支持转义，值中不能包含"=>"或换行，缺少分隔符的行返回错误
*/
func ParsePHPArray(s string) (map[string]string, error) {
	s = strings.Trim(s, "Array\n(\n")
	s = strings.Trim(s, "\n)")
	s = strings.TrimSpace(s)

	out := make(map[string]string)
	for _, line := range strings.Split(s, "\n") {
		parts := strings.Split(line, phpArraySeparator)
		if len(parts) != 2 {
			return nil, fmt.Errorf("php array line %q: want one %q separator", line, phpArraySeparator)
		}
		key := strings.Trim(strings.TrimSpace(parts[0]), "[] ")
		out[key] = strings.TrimSpace(parts[1])
	}
	return out, nil
}
