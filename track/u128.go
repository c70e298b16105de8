// Package track 提供生成代码的运行时支持类型。
//
// 当被跟踪字段超过 64 个时，原生无符号整数无法容纳位掩码，
// 生成的代码会使用 U128 作为 tracker 字段类型。
package track

// U128 128 位无符号整数，按 (Hi, Lo) 两个 64 位字存储
// 仅提供位掩码运算所需的最小接口，所有方法均为纯函数
type U128 struct {
	Hi uint64
	Lo uint64
}

// U128Bit 返回第 i 位为 1 的掩码，i 的取值范围是 [0, 128)
func U128Bit(i uint) U128 {
	if i < 64 {
		return U128{Lo: 1 << i}
	}
	return U128{Hi: 1 << (i - 64)}
}

// U128Max 返回全 1 掩码
func U128Max() U128 {
	return U128{Hi: ^uint64(0), Lo: ^uint64(0)}
}

// Or 按位或
func (u U128) Or(v U128) U128 {
	return U128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// And 按位与
func (u U128) And(v U128) U128 {
	return U128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// IsZero 是否为全 0
func (u U128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}
