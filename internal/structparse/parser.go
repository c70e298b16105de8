package structparse

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// ParseStruct 从文件中解析指定名称的结构体
func ParseStruct(filePath, structName string) (*StructInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("解析文件 %s 失败: %w", filePath, err)
	}

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.Name.Name != structName {
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("%s 不是结构体类型", structName)
			}

			info := &StructInfo{
				Name:        structName,
				PackageName: file.Name.Name,
				FilePath:    filePath,
				Line:        fset.Position(typeSpec.Pos()).Line,
			}

			// 结构体 doc：TypeSpec 自己的 doc 优先，否则取 GenDecl 的
			// （type Foo struct {...} 单独声明时注释挂在 GenDecl 上）
			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			info.Doc = commentLines(doc)

			info.TypeParams = parseTypeParams(typeSpec.TypeParams)
			info.Fields = parseFields(fset, structType)

			return info, nil
		}
	}

	return nil, fmt.Errorf("在文件 %s 中未找到结构体 %s", filePath, structName)
}

// parseTypeParams 解析泛型参数列表
func parseTypeParams(fieldList *ast.FieldList) []TypeParam {
	if fieldList == nil {
		return nil
	}

	var params []TypeParam
	for _, field := range fieldList.List {
		constraint := ExprToString(field.Type)
		for _, name := range field.Names {
			params = append(params, TypeParam{
				Name:       name.Name,
				Constraint: constraint,
			})
		}
	}
	return params
}

// parseFields 解析结构体字段列表，保持声明顺序
func parseFields(fset *token.FileSet, structType *ast.StructType) []FieldInfo {
	if structType.Fields == nil {
		return nil
	}

	var fields []FieldInfo
	for _, field := range structType.Fields.List {
		typeStr := ExprToString(field.Type)

		var tag string
		if field.Tag != nil {
			tag = field.Tag.Value
		}

		doc := commentLines(field.Doc)
		comment := commentLines(field.Comment)
		line := fset.Position(field.Pos()).Line

		if len(field.Names) == 0 {
			// 嵌入字段，名称为空，由调用方决定如何处理
			fields = append(fields, FieldInfo{
				Type:     typeStr,
				Tag:      tag,
				Doc:      doc,
				Comment:  comment,
				Embedded: true,
				Line:     line,
			})
			continue
		}

		// 一行声明多个字段时（a, b int），注释和 tag 为各字段共享
		for _, name := range field.Names {
			fields = append(fields, FieldInfo{
				Name:    name.Name,
				Type:    typeStr,
				Tag:     tag,
				Doc:     append([]string(nil), doc...),
				Comment: append([]string(nil), comment...),
				Line:    line,
			})
		}
	}

	return fields
}

// commentLines 将注释组转换为文本行，去掉注释前缀和首尾空白
func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}

	var lines []string
	for _, c := range cg.List {
		text := c.Text
		if strings.HasPrefix(text, "//") {
			lines = append(lines, strings.TrimSpace(strings.TrimPrefix(text, "//")))
			continue
		}
		// 块注释按行拆分
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
		for _, l := range strings.Split(text, "\n") {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	return lines
}

// ExprToString 将类型表达式还原为源码文本
func ExprToString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return "*" + ExprToString(e.X)
	case *ast.SelectorExpr:
		return ExprToString(e.X) + "." + e.Sel.Name
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + ExprToString(e.Elt)
		}
		return "[" + ExprToString(e.Len) + "]" + ExprToString(e.Elt)
	case *ast.MapType:
		return "map[" + ExprToString(e.Key) + "]" + ExprToString(e.Value)
	case *ast.IndexExpr:
		return ExprToString(e.X) + "[" + ExprToString(e.Index) + "]"
	case *ast.IndexListExpr:
		var indices []string
		for _, idx := range e.Indices {
			indices = append(indices, ExprToString(idx))
		}
		return ExprToString(e.X) + "[" + strings.Join(indices, ", ") + "]"
	case *ast.ChanType:
		switch e.Dir {
		case ast.RECV:
			return "<-chan " + ExprToString(e.Value)
		case ast.SEND:
			return "chan<- " + ExprToString(e.Value)
		default:
			return "chan " + ExprToString(e.Value)
		}
	case *ast.FuncType:
		return "func" + funcSignature(e)
	case *ast.InterfaceType:
		if e.Methods == nil || len(e.Methods.List) == 0 {
			return "interface{}"
		}
		return "interface{ ... }"
	case *ast.StructType:
		if e.Fields == nil || len(e.Fields.List) == 0 {
			return "struct{}"
		}
		return "struct{ ... }"
	case *ast.Ellipsis:
		return "..." + ExprToString(e.Elt)
	case *ast.ParenExpr:
		return "(" + ExprToString(e.X) + ")"
	case *ast.BasicLit:
		return e.Value
	case *ast.BinaryExpr:
		return ExprToString(e.X) + " " + e.Op.String() + " " + ExprToString(e.Y)
	case *ast.UnaryExpr:
		return e.Op.String() + ExprToString(e.X)
	default:
		return ""
	}
}

// funcSignature 还原函数类型签名
func funcSignature(ft *ast.FuncType) string {
	var sb strings.Builder

	sb.WriteString("(")
	if ft.Params != nil {
		var params []string
		for _, p := range ft.Params.List {
			typeStr := ExprToString(p.Type)
			if len(p.Names) == 0 {
				params = append(params, typeStr)
				continue
			}
			var names []string
			for _, n := range p.Names {
				names = append(names, n.Name)
			}
			params = append(params, strings.Join(names, ", ")+" "+typeStr)
		}
		sb.WriteString(strings.Join(params, ", "))
	}
	sb.WriteString(")")

	if ft.Results == nil || len(ft.Results.List) == 0 {
		return sb.String()
	}

	var results []string
	for _, r := range ft.Results.List {
		results = append(results, ExprToString(r.Type))
	}
	if len(results) == 1 && len(ft.Results.List[0].Names) == 0 {
		sb.WriteString(" " + results[0])
	} else {
		sb.WriteString(" (" + strings.Join(results, ", ") + ")")
	}

	return sb.String()
}
