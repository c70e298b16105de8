// Package structparse 提供结构体定义的静态解析。
//
// 本包只做单文件内的结构体描述提取：字段名、类型、标签、
// 字段注释（doc 与行尾）、泛型参数，以及嵌入字段的识别。
// 类型以源码文本形式返回，不做跨包解析。
//
// 基本用法：
//
//	info, err := structparse.ParseStruct("path/to/file.go", "StructName")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, field := range info.Fields {
//	    fmt.Printf("%s %s\n", field.Name, field.Type)
//	}
package structparse
