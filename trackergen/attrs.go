package trackergen

import (
	"regexp"
	"strings"
)

// fieldMarks 字段级标记
type fieldMarks struct {
	NoEq       bool // 赋值时不做相等比较，无条件标脏
	DoNotTrack bool // 不为该字段生成跟踪代码
}

var markRegex = regexp.MustCompile(`@(\w+(?:\.\w+)*)`)

// parseFieldMarks 从字段注释中识别标记并原位移除
// 两种写法等价：裸形式（@no_eq）和带命名空间形式（@tracker.no_eq）。
// 同一标记重复出现无副作用。整行只剩标记时丢弃该行。
func parseFieldMarks(lines []string) (fieldMarks, []string) {
	var marks fieldMarks
	var kept []string

	for _, line := range lines {
		cleaned := markRegex.ReplaceAllStringFunc(line, func(m string) string {
			switch markName(strings.TrimPrefix(m, "@")) {
			case "no_eq":
				marks.NoEq = true
				return ""
			case "do_not_track":
				marks.DoNotTrack = true
				return ""
			}
			return m
		})
		// 移除标记后变成空行说明这行只有标记，不保留
		if strings.TrimSpace(cleaned) == "" && strings.TrimSpace(line) != "" {
			continue
		}
		kept = append(kept, strings.TrimRight(cleaned, " \t"))
	}

	return marks, kept
}

// markName 判断注解路径是否是已知标记，是则返回规范名，否则返回空串
// 匹配规则按路径段数：单段直接比对，两段要求命名空间为 tracker
func markName(path string) string {
	segs := strings.Split(path, ".")
	switch len(segs) {
	case 1:
		if segs[0] == "no_eq" || segs[0] == "do_not_track" {
			return segs[0]
		}
	case 2:
		if segs[0] == "tracker" && (segs[1] == "no_eq" || segs[1] == "do_not_track") {
			return segs[1]
		}
	}
	return ""
}

// stripAnnotation 从注释行中移除指定名称的注解（含可选的参数括号）
// 用于重新输出结构体 doc 时去掉 @Track
func stripAnnotation(lines []string, name string) []string {
	re := regexp.MustCompile(`@` + regexp.QuoteMeta(name) + `(\([^)]*\))?`)

	var kept []string
	for _, line := range lines {
		cleaned := re.ReplaceAllString(line, "")
		if strings.TrimSpace(cleaned) == "" && strings.TrimSpace(line) != "" {
			continue
		}
		kept = append(kept, strings.TrimRight(cleaned, " \t"))
	}
	return kept
}
