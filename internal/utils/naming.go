package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpperFirst 将首字母转换为大写
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// LowerFirst 将首字母转换为小写
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// IsExported 判断标识符是否导出
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// ReceiverName 根据类型名生成接收器变量名，如 UserSetting -> u
func ReceiverName(typeName string) string {
	if typeName == "" {
		return "x"
	}
	name := strings.ToLower(typeName[:1])
	// 避免与 Go 关键词冲突（单字母只有这几种可能）
	if name == "_" {
		return "x"
	}
	return name
}

// isGoKeyword 检查是否是 Go 关键词
func isGoKeyword(s string) bool {
	keywords := map[string]bool{
		"break": true, "case": true, "chan": true, "const": true, "continue": true,
		"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
		"func": true, "go": true, "goto": true, "if": true, "import": true,
		"interface": true, "map": true, "package": true, "range": true, "return": true,
		"select": true, "struct": true, "switch": true, "type": true, "var": true,
	}
	return keywords[s]
}

// SafeParamName 生成安全的参数名（避免 Go 关键词）
func SafeParamName(fieldName string) string {
	paramName := LowerFirst(fieldName)
	if isGoKeyword(paramName) {
		return paramName + "Val"
	}
	return paramName
}
