package simple

import "time"

// User 用户信息
// 第二行注释
type User struct {
	// ID 主键
	ID   int64  `json:"id"`
	Name string `json:"name"` // 显示名称
	tags []string
	Meta map[string]any
	At   *time.Time
	a, b int
}

type Base struct {
	CreatedAt time.Time
}

// WithEmbedded 含嵌入字段
type WithEmbedded struct {
	Base
	Name string
}

// NotAStruct 非结构体类型
type NotAStruct int
