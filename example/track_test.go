package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_MarksOnlyOnChange(t *testing.T) {
	var s UserSetting

	// 赋相同的零值不算变更
	s.SetTitle("")
	assert.False(t, s.ChangedTitle())
	assert.False(t, s.ChangedAny())

	s.SetTitle("hello")
	assert.True(t, s.ChangedTitle())
	assert.True(t, s.ChangedAny())
	assert.Equal(t, "hello", s.GetTitle())

	// 其他字段不受影响
	assert.False(t, s.ChangedWidth())
	assert.False(t, s.ChangedHeight())
}

func TestSet_NoEqAlwaysMarks(t *testing.T) {
	var s UserSetting

	// @no_eq 字段即使赋零值也标脏
	s.SetItems(nil)
	assert.True(t, s.ChangedItems())

	s.Reset()
	s.SetItems([]string{"a"})
	assert.True(t, s.ChangedItems())
	assert.Equal(t, []string{"a"}, s.GetItems())
}

func TestGetMut_MarksImmediately(t *testing.T) {
	var s UserSetting

	p := s.GetMutWidth()
	// 取可写指针即视为变更，与是否实际写入无关
	assert.True(t, s.ChangedWidth())

	*p = 800
	assert.Equal(t, 800, s.GetWidth())
}

func TestUpdate_MarksAndMutates(t *testing.T) {
	var s UserSetting
	s.Height = 600

	s.UpdateHeight(func(h *int) { *h += 20 })
	assert.True(t, s.ChangedHeight())
	assert.Equal(t, 620, s.GetHeight())
}

func TestChanged_MaskComposition(t *testing.T) {
	var s UserSetting
	s.SetWidth(1024)

	assert.True(t, s.Changed(UserSettingMaskWidth))
	assert.True(t, s.Changed(UserSettingMaskWidth|UserSettingMaskHeight))
	assert.False(t, s.Changed(UserSettingMaskHeight))
	assert.False(t, s.Changed(UserSettingMaskTitle|UserSettingMaskItems))
}

func TestMarkAllChangedAndReset(t *testing.T) {
	var s UserSetting

	s.MarkAllChanged()
	assert.True(t, s.ChangedTitle())
	assert.True(t, s.ChangedWidth())
	assert.True(t, s.ChangedHeight())
	assert.True(t, s.ChangedItems())
	assert.True(t, s.changedCounter())
	assert.True(t, s.ChangedAny())

	s.Reset()
	assert.False(t, s.ChangedAny())
	assert.False(t, s.ChangedTitle())
}

func TestUnexportedFieldAccessors(t *testing.T) {
	var s UserSetting

	s.setCounter(0)
	assert.False(t, s.changedCounter())

	s.setCounter(3)
	assert.True(t, s.changedCounter())
	assert.Equal(t, 3, s.getCounter())

	s.Reset()
	s.updateCounter(func(c *int) { *c++ })
	assert.True(t, s.changedCounter())
	assert.Equal(t, 4, s.getCounter())
	assert.Equal(t, &s.counter, s.getMutCounter())
}

func TestResetKeepsValues(t *testing.T) {
	var s UserSetting
	s.SetTitle("keep")
	s.SetWidth(42)

	s.Reset()

	// Reset 只清脏标记，不回滚字段值
	assert.Equal(t, "keep", s.GetTitle())
	assert.Equal(t, 42, s.GetWidth())
	assert.False(t, s.ChangedAny())
}

func TestTrackAllValue(t *testing.T) {
	assert.Equal(t, uint8(0xff), UserSettingTrackAll)
	assert.Equal(t, uint8(1), UserSettingMaskTitle)
	assert.Equal(t, uint8(1<<4), userSettingMaskCounter)
}

func TestGenericPair(t *testing.T) {
	var p Pair[string, []int]

	p.SetKey("k")
	assert.True(t, p.ChangedKey())
	assert.False(t, p.ChangedVal())

	// V 是切片类型无法比较，定义时用 @no_eq 无条件标脏
	p.SetVal([]int{1, 2})
	assert.True(t, p.ChangedVal())
	assert.Equal(t, []int{1, 2}, p.GetVal())

	assert.True(t, p.Changed(PairMaskKey|PairMaskVal))

	p.Reset()
	assert.False(t, p.ChangedAny())

	p.UpdateVal(func(v *[]int) { *v = append(*v, 3) })
	assert.True(t, p.ChangedVal())
	assert.Equal(t, []int{1, 2, 3}, p.GetVal())

	p.MarkAllChanged()
	assert.True(t, p.ChangedKey())
}
