package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnnotations_Simple(t *testing.T) {
	anns := ParseAnnotations("// @Track")
	require.Len(t, anns, 1)
	assert.Equal(t, "Track", anns[0].Name)
	assert.Empty(t, anns[0].Params)
}

func TestParseAnnotations_Namespaced(t *testing.T) {
	anns := ParseAnnotations("// @tracker.no_eq")
	require.Len(t, anns, 1)
	assert.Equal(t, "tracker.no_eq", anns[0].Name)
	assert.Equal(t, []string{"tracker", "no_eq"}, anns[0].Segments())
}

func TestParseAnnotations_WithParams(t *testing.T) {
	anns := ParseAnnotations("// @Track(mode=fast, output=`a b.go`)")
	require.Len(t, anns, 1)
	assert.Equal(t, "fast", anns[0].GetParam("mode"))
	assert.Equal(t, "a b.go", anns[0].GetParam("output"))
}

func TestParseAnnotations_MultiLine(t *testing.T) {
	comment := `User 用户设置
@Track
@Other(key="value")`

	anns := ParseAnnotations(comment)
	require.Len(t, anns, 2)
	assert.Equal(t, "Track", anns[0].Name)
	assert.Equal(t, "Other", anns[1].Name)
	assert.Equal(t, "value", anns[1].GetParam("key"))
}

func TestParseAnnotations_NoAnnotation(t *testing.T) {
	anns := ParseAnnotations("// 普通注释，邮箱是 a@b 不算注解？")
	// "@b" 会被识别为注解，调用方通过过滤器排除无关名称
	for _, ann := range anns {
		assert.NotEqual(t, "Track", ann.Name)
	}
}

func TestFilterByNames(t *testing.T) {
	anns := ParseAnnotations("// @Track @Other @tracker.no_eq")
	filtered := FilterByNames(anns, "Track")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Track", filtered[0].Name)
}

func TestHasAndGetAnnotation(t *testing.T) {
	anns := ParseAnnotations("// @Track")
	assert.True(t, HasAnnotation(anns, "Track"))
	assert.False(t, HasAnnotation(anns, "Other"))
	assert.NotNil(t, GetAnnotation(anns, "Track"))
	assert.Nil(t, GetAnnotation(anns, "Other"))
}

func TestGetParamOr(t *testing.T) {
	anns := ParseAnnotations("// @Track(a=1)")
	require.Len(t, anns, 1)
	assert.Equal(t, "1", anns[0].GetParamOr("a", "x"))
	assert.Equal(t, "x", anns[0].GetParamOr("b", "x"))
}
