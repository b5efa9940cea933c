package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make 根据姓名生成URL安全的slug
// 例如 ("Ann", "Lee") -> "ann-lee"
// 唯一性由调用方（注册流程）通过编号后缀保证
func Make(firstName, lastName string) string {
	s := strings.ToLower(firstName + " " + lastName)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
