package trackergen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldMarks_Bare(t *testing.T) {
	marks, kept := parseFieldMarks([]string{"@no_eq"})
	assert.True(t, marks.NoEq)
	assert.False(t, marks.DoNotTrack)
	assert.Empty(t, kept)

	marks, kept = parseFieldMarks([]string{"@do_not_track"})
	assert.True(t, marks.DoNotTrack)
	assert.Empty(t, kept)
}

func TestParseFieldMarks_Namespaced(t *testing.T) {
	marks, _ := parseFieldMarks([]string{"@tracker.no_eq"})
	assert.True(t, marks.NoEq)

	marks, _ = parseFieldMarks([]string{"@tracker.do_not_track"})
	assert.True(t, marks.DoNotTrack)
}

func TestParseFieldMarks_WrongNamespace(t *testing.T) {
	// 其他命名空间下的同名注解不算标记，原样保留
	marks, kept := parseFieldMarks([]string{"@other.no_eq"})
	assert.False(t, marks.NoEq)
	assert.Equal(t, []string{"@other.no_eq"}, kept)

	// 三段路径也不匹配
	marks, kept = parseFieldMarks([]string{"@tracker.no_eq.extra"})
	assert.False(t, marks.NoEq)
	assert.Equal(t, []string{"@tracker.no_eq.extra"}, kept)
}

func TestParseFieldMarks_Duplicates(t *testing.T) {
	marks, kept := parseFieldMarks([]string{"@no_eq @tracker.no_eq", "@no_eq"})
	assert.True(t, marks.NoEq)
	assert.Empty(t, kept)
}

func TestParseFieldMarks_KeepsSurroundingText(t *testing.T) {
	marks, kept := parseFieldMarks([]string{"窗口标题 @no_eq", "普通说明"})
	assert.True(t, marks.NoEq)
	assert.Equal(t, []string{"窗口标题", "普通说明"}, kept)
}

func TestParseFieldMarks_BlankLinePreserved(t *testing.T) {
	_, kept := parseFieldMarks([]string{"说明", "", "补充"})
	assert.Equal(t, []string{"说明", "", "补充"}, kept)
}

func TestStripAnnotation(t *testing.T) {
	kept := stripAnnotation([]string{"UserSetting 用户设置", "@Track"}, "Track")
	assert.Equal(t, []string{"UserSetting 用户设置"}, kept)

	kept = stripAnnotation([]string{"@Track(x=1)"}, "Track")
	assert.Empty(t, kept)

	kept = stripAnnotation([]string{"说明 @Track 结尾"}, "Track")
	assert.Equal(t, []string{"说明  结尾"}, kept)
}
