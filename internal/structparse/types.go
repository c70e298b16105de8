package structparse

// TypeParam 泛型类型参数
type TypeParam struct {
	Name       string // 参数名，如 K
	Constraint string // 约束的源码文本，如 comparable、any
}

// FieldInfo 表示结构体字段信息
type FieldInfo struct {
	Name     string   // 字段名，嵌入字段为空
	Type     string   // 字段类型的源码文本
	Tag      string   // 原始 tag（含反引号），无 tag 时为空
	Doc      []string // 字段上方的注释行（已去掉 // 前缀）
	Comment  []string // 字段行尾的注释行（已去掉 // 前缀）
	Embedded bool     // 是否为嵌入（匿名）字段
	Line     int      // 字段所在行号
}

// StructInfo 表示结构体信息
type StructInfo struct {
	Name        string      // 结构体名称
	PackageName string      // 包名
	FilePath    string      // 结构体所在文件路径
	Doc         []string    // 结构体 doc 注释行（已去掉 // 前缀）
	TypeParams  []TypeParam // 泛型参数列表，非泛型为空
	Fields      []FieldInfo // 字段列表，保持声明顺序
	Line        int         // 结构体定义所在行号
}
