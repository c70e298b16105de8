package trackergen

import "fmt"

// maxTrackedFields tracker 位掩码的容量上限
const maxTrackedFields = 128

// maskType 描述 tracker 字段的位掩码类型
type maskType struct {
	name string // 原生类型名，如 uint8；U128 时为空
	bits int
	u128 bool
}

// selectMaskType 根据被跟踪字段数量选择能容纳的最小无符号整数类型
// 超过 64 个字段时原生整数不够用，改用 track.U128
func selectMaskType(fieldCount int) (maskType, error) {
	switch {
	case fieldCount < 0:
		return maskType{}, fmt.Errorf("字段数量不能为负数: %d", fieldCount)
	case fieldCount <= 8:
		return maskType{name: "uint8", bits: 8}, nil
	case fieldCount <= 16:
		return maskType{name: "uint16", bits: 16}, nil
	case fieldCount <= 32:
		return maskType{name: "uint32", bits: 32}, nil
	case fieldCount <= 64:
		return maskType{name: "uint64", bits: 64}, nil
	case fieldCount <= maxTrackedFields:
		return maskType{bits: 128, u128: true}, nil
	default:
		return maskType{}, fmt.Errorf("被跟踪字段数量 %d 超过上限 %d", fieldCount, maxTrackedFields)
	}
}

// typeName 返回 tracker 字段在生成代码中的类型名
func (m maskType) typeName() string {
	if m.u128 {
		return "track.U128"
	}
	return m.name
}

// markStmt 返回把指定掩码位置 1 的语句
func (m maskType) markStmt(recv, mask string) string {
	if m.u128 {
		return fmt.Sprintf("%s.tracker = %s.tracker.Or(%s)", recv, recv, mask)
	}
	return fmt.Sprintf("%s.tracker |= %s", recv, mask)
}

// changedExpr 返回判断指定掩码位是否置 1 的表达式
func (m maskType) changedExpr(recv, mask string) string {
	if m.u128 {
		return fmt.Sprintf("!%s.tracker.And(%s).IsZero()", recv, mask)
	}
	return fmt.Sprintf("%s.tracker&%s != 0", recv, mask)
}

// anyChangedExpr 返回判断是否有任意位置 1 的表达式
func (m maskType) anyChangedExpr(recv string) string {
	if m.u128 {
		return fmt.Sprintf("!%s.tracker.IsZero()", recv)
	}
	return fmt.Sprintf("%s.tracker != 0", recv)
}

// resetStmt 返回清空所有位的语句
func (m maskType) resetStmt(recv string) string {
	if m.u128 {
		return fmt.Sprintf("%s.tracker = track.U128{}", recv)
	}
	return fmt.Sprintf("%s.tracker = 0", recv)
}
