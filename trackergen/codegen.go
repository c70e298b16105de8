package trackergen

import (
	"fmt"
	"strings"

	"github.com/donutnomad/gg"
	"github.com/donutnomad/trackgen/internal/structparse"
	"github.com/donutnomad/trackgen/internal/utils"
)

// trackPkgPath 运行时支持包，仅在掩码超过 64 位时引用
const trackPkgPath = "github.com/donutnomad/trackgen/track"

// trackedField 参与生成的字段
type trackedField struct {
	Name    string
	Type    string
	Tag     string
	Doc     []string // 去掉标记后的字段上方注释
	Comment []string // 去掉标记后的行尾注释
	Marks   fieldMarks
	Index   int // tracker 位序号，被 @do_not_track 排除时为 -1
}

// structModel 单个结构体的生成模型
type structModel struct {
	Info   *structparse.StructInfo
	Doc    []string // 去掉 @Track 后的结构体 doc
	Fields []trackedField
	Mask   maskType
}

// buildModel 校验结构体并构建生成模型
// 位序号按字段声明顺序分配，被排除的字段不占用序号
func buildModel(info *structparse.StructInfo) (*structModel, error) {
	model := &structModel{
		Info: info,
		Doc:  stripAnnotation(info.Doc, "Track"),
	}

	next := 0
	for _, f := range info.Fields {
		if f.Embedded {
			return nil, fmt.Errorf("%s:%d: 结构体 %s 不支持嵌入字段 %s", info.FilePath, f.Line, info.Name, f.Type)
		}
		if f.Name == "tracker" {
			return nil, fmt.Errorf("%s:%d: 结构体 %s 的字段名 tracker 是保留名", info.FilePath, f.Line, info.Name)
		}

		docMarks, doc := parseFieldMarks(f.Doc)
		commentMarks, comment := parseFieldMarks(f.Comment)
		marks := fieldMarks{
			NoEq:       docMarks.NoEq || commentMarks.NoEq,
			DoNotTrack: docMarks.DoNotTrack || commentMarks.DoNotTrack,
		}

		tf := trackedField{
			Name:    f.Name,
			Type:    f.Type,
			Tag:     f.Tag,
			Doc:     doc,
			Comment: comment,
			Marks:   marks,
			Index:   -1,
		}
		if !marks.DoNotTrack {
			tf.Index = next
			next++
		}
		model.Fields = append(model.Fields, tf)
	}

	mask, err := selectMaskType(next)
	if err != nil {
		return nil, fmt.Errorf("%s:%d: 结构体 %s: %w", info.FilePath, info.Line, info.Name, err)
	}
	model.Mask = mask

	return model, nil
}

// emitStruct 输出单个结构体的全部生成代码
func emitStruct(gen *gg.Generator, model *structModel) {
	group := gen.Body()

	emitTypeDef(group, model)
	emitMaskValues(gen, group, model)

	for i := range model.Fields {
		f := &model.Fields[i]
		if f.Index < 0 {
			continue
		}
		emitFieldMethods(group, model, f)
	}

	emitStructMethods(group, model)
}

// emitTypeDef 重新输出结构体定义并注入 tracker 字段
// 定义文件带 trackdef 构建约束不参与编译，这里输出的才是实际生效的类型
func emitTypeDef(group *gg.Group, model *structModel) {
	var b strings.Builder

	for _, line := range model.Doc {
		writeCommentLine(&b, "", line)
	}

	b.WriteString("type ")
	b.WriteString(model.Info.Name)
	b.WriteString(typeParamsDecl(model.Info))
	b.WriteString(" struct {\n")

	for _, f := range model.Fields {
		for _, line := range f.Doc {
			writeCommentLine(&b, "\t", line)
		}
		b.WriteString("\t")
		b.WriteString(f.Name)
		b.WriteString(" ")
		b.WriteString(f.Type)
		if f.Tag != "" {
			b.WriteString(" ")
			b.WriteString(f.Tag)
		}
		if len(f.Comment) > 0 {
			b.WriteString(" // ")
			b.WriteString(strings.Join(f.Comment, " "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\ttracker ")
	b.WriteString(model.Mask.typeName())
	b.WriteString("\n}")

	group.AddLine()
	group.Append(gg.S("%s", b.String()))
}

func writeCommentLine(b *strings.Builder, indent, line string) {
	b.WriteString(indent)
	if line == "" {
		b.WriteString("//\n")
		return
	}
	b.WriteString("// ")
	b.WriteString(line)
	b.WriteString("\n")
}

// emitMaskValues 输出每个被跟踪字段的掩码和全量掩码
// 原生整数用 const 块，U128 无法作为常量只能用 var 块
func emitMaskValues(gen *gg.Generator, group *gg.Group, model *structModel) {
	group.AddLine()
	group.Append(gg.LineComment("%s 字段变更掩码，位序与字段声明顺序一致", model.Info.Name))

	if model.Mask.u128 {
		trackP := gen.P(trackPkgPath)
		varGroup := gg.Var()
		for _, f := range model.Fields {
			if f.Index < 0 {
				continue
			}
			varGroup.AddField(maskIdent(model.Info.Name, f.Name), trackP.Call("U128Bit", gg.S("%d", f.Index)))
		}
		varGroup.AddField(trackAllIdent(model.Info.Name), trackP.Call("U128Max"))
		group.Append(varGroup)
		return
	}

	constGroup := gg.Const()
	for _, f := range model.Fields {
		if f.Index < 0 {
			continue
		}
		constGroup.AddTypedField(maskIdent(model.Info.Name, f.Name), model.Mask.name, gg.S("1 << %d", f.Index))
	}
	constGroup.AddTypedField(trackAllIdent(model.Info.Name), model.Mask.name, gg.S("^%s(0)", model.Mask.name))
	group.Append(constGroup)
}

// emitFieldMethods 输出单个字段的访问器方法
func emitFieldMethods(group *gg.Group, model *structModel, f *trackedField) {
	info := model.Info
	recv := utils.ReceiverName(info.Name)
	recvType := receiverType(info)
	mask := maskIdent(info.Name, f.Name)

	group.AddLine()
	group.Append(gg.LineComment("%s 字段的跟踪访问器", f.Name))

	// 只读访问
	group.Append(gg.Function(fieldMethodName("Get", f.Name)).
		WithReceiver(recv, recvType).
		AddResult("", f.Type).
		AddBody(gg.S("return %s.%s", recv, f.Name)))

	group.AddLine()

	// 返回可写指针，取指针即视为变更
	group.Append(gg.Function(fieldMethodName("GetMut", f.Name)).
		WithReceiver(recv, recvType).
		AddResult("", "*"+f.Type).
		AddBody(
			gg.S("%s", model.Mask.markStmt(recv, mask)),
			gg.S("return &%s.%s", recv, f.Name),
		))

	group.AddLine()

	// 通过回调原地修改
	group.Append(gg.Function(fieldMethodName("Update", f.Name)).
		WithReceiver(recv, recvType).
		AddParameter("fn", fmt.Sprintf("func(*%s)", f.Type)).
		AddBody(
			gg.S("%s", model.Mask.markStmt(recv, mask)),
			gg.S("fn(&%s.%s)", recv, f.Name),
		))

	group.AddLine()

	// 赋值，默认只有值变化才标脏；@no_eq 字段无条件标脏
	setFn := gg.Function(fieldMethodName("Set", f.Name)).
		WithReceiver(recv, recvType).
		AddParameter("value", f.Type)
	if f.Marks.NoEq {
		setFn.AddBody(
			gg.S("%s", model.Mask.markStmt(recv, mask)),
			gg.S("%s.%s = value", recv, f.Name),
		)
	} else {
		setFn.AddBody(
			gg.If(fmt.Sprintf("%s.%s != value", recv, f.Name)).AddBody(
				gg.S("%s", model.Mask.markStmt(recv, mask)),
			),
			gg.S("%s.%s = value", recv, f.Name),
		)
	}
	group.Append(setFn)

	group.AddLine()

	// 该字段是否已变更
	group.Append(gg.Function(fieldMethodName("Changed", f.Name)).
		WithReceiver(recv, recvType).
		AddResult("", "bool").
		AddBody(gg.S("return %s", model.Mask.changedExpr(recv, mask))))
}

// emitStructMethods 输出结构体级的脏标记方法
func emitStructMethods(group *gg.Group, model *structModel) {
	info := model.Info
	recv := utils.ReceiverName(info.Name)
	recvType := receiverType(info)
	mask := model.Mask

	markAll := structMethodName(info.Name, "MarkAllChanged")
	group.AddLine()
	group.Append(gg.LineComment("%s 把所有位置 1，等价于每个字段都发生了变更", markAll))
	group.Append(gg.Function(markAll).
		WithReceiver(recv, recvType).
		AddBody(gg.S("%s.tracker = %s", recv, trackAllIdent(info.Name))))

	changed := structMethodName(info.Name, "Changed")
	group.AddLine()
	group.Append(gg.LineComment("%s 判断掩码覆盖的字段是否有任一发生变更，掩码可按位或组合", changed))
	group.Append(gg.Function(changed).
		WithReceiver(recv, recvType).
		AddParameter("mask", mask.typeName()).
		AddResult("", "bool").
		AddBody(gg.S("return %s", mask.changedExpr(recv, "mask"))))

	group.AddLine()
	group.Append(gg.Function(structMethodName(info.Name, "ChangedAny")).
		WithReceiver(recv, recvType).
		AddResult("", "bool").
		AddBody(gg.S("return %s", mask.anyChangedExpr(recv))))

	reset := structMethodName(info.Name, "Reset")
	group.AddLine()
	group.Append(gg.LineComment("%s 清空脏标记，通常在一轮处理结束后调用", reset))
	group.Append(gg.Function(reset).
		WithReceiver(recv, recvType).
		AddBody(gg.S("%s", mask.resetStmt(recv))))
}

// maskIdent 字段掩码标识符，可见性跟随字段本身
func maskIdent(structName, fieldName string) string {
	ident := structName + "Mask" + utils.UpperFirst(fieldName)
	if !utils.IsExported(fieldName) {
		ident = utils.LowerFirst(ident)
	}
	return ident
}

// trackAllIdent 全量掩码标识符，可见性跟随结构体名
func trackAllIdent(structName string) string {
	return structName + "TrackAll"
}

// fieldMethodName 字段方法名，可见性跟随字段本身
func fieldMethodName(prefix, fieldName string) string {
	name := prefix + utils.UpperFirst(fieldName)
	if !utils.IsExported(fieldName) {
		name = utils.LowerFirst(name)
	}
	return name
}

// structMethodName 结构体级方法名，可见性跟随结构体名
func structMethodName(structName, name string) string {
	if !utils.IsExported(structName) {
		return utils.LowerFirst(name)
	}
	return name
}

// typeParamsDecl 泛型参数声明，如 [K comparable, V any]
func typeParamsDecl(info *structparse.StructInfo) string {
	if len(info.TypeParams) == 0 {
		return ""
	}
	parts := make([]string, len(info.TypeParams))
	for i, p := range info.TypeParams {
		parts[i] = p.Name + " " + p.Constraint
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgs 泛型实参列表，如 [K, V]
func typeArgs(info *structparse.StructInfo) string {
	if len(info.TypeParams) == 0 {
		return ""
	}
	names := make([]string, len(info.TypeParams))
	for i, p := range info.TypeParams {
		names[i] = p.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// receiverType 接收器类型，泛型结构体只带参数名不带约束
func receiverType(info *structparse.StructInfo) string {
	return "*" + info.Name + typeArgs(info)
}
