package structparse

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStruct_Simple(t *testing.T) {
	info, err := ParseStruct(filepath.Join("testdata", "simple", "user.go"), "User")
	require.NoError(t, err)

	assert.Equal(t, "User", info.Name)
	assert.Equal(t, "simple", info.PackageName)
	assert.Equal(t, []string{"User 用户信息", "第二行注释"}, info.Doc)
	assert.Empty(t, info.TypeParams)

	require.Len(t, info.Fields, 7)

	assert.Equal(t, "ID", info.Fields[0].Name)
	assert.Equal(t, "int64", info.Fields[0].Type)
	assert.Equal(t, "`json:\"id\"`", info.Fields[0].Tag)
	assert.Equal(t, []string{"ID 主键"}, info.Fields[0].Doc)

	assert.Equal(t, "Name", info.Fields[1].Name)
	assert.Equal(t, []string{"显示名称"}, info.Fields[1].Comment)

	assert.Equal(t, "tags", info.Fields[2].Name)
	assert.Equal(t, "[]string", info.Fields[2].Type)

	assert.Equal(t, "map[string]any", info.Fields[3].Type)
	assert.Equal(t, "*time.Time", info.Fields[4].Type)

	// 一行多字段声明被展开
	assert.Equal(t, "a", info.Fields[5].Name)
	assert.Equal(t, "b", info.Fields[6].Name)
	assert.Equal(t, "int", info.Fields[5].Type)
}

func TestParseStruct_Embedded(t *testing.T) {
	info, err := ParseStruct(filepath.Join("testdata", "simple", "user.go"), "WithEmbedded")
	require.NoError(t, err)

	require.Len(t, info.Fields, 2)
	assert.True(t, info.Fields[0].Embedded)
	assert.Empty(t, info.Fields[0].Name)
	assert.Equal(t, "Base", info.Fields[0].Type)
	assert.False(t, info.Fields[1].Embedded)
}

func TestParseStruct_Generic(t *testing.T) {
	info, err := ParseStruct(filepath.Join("testdata", "generic", "pair.go"), "Pair")
	require.NoError(t, err)

	require.Len(t, info.TypeParams, 2)
	assert.Equal(t, TypeParam{Name: "K", Constraint: "comparable"}, info.TypeParams[0])
	assert.Equal(t, TypeParam{Name: "V", Constraint: "any"}, info.TypeParams[1])

	require.Len(t, info.Fields, 3)
	assert.Equal(t, "K", info.Fields[0].Type)
	assert.Equal(t, "[]V", info.Fields[2].Type)
}

func TestParseStruct_NotFound(t *testing.T) {
	_, err := ParseStruct(filepath.Join("testdata", "simple", "user.go"), "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "未找到结构体")
}

func TestParseStruct_NotAStruct(t *testing.T) {
	_, err := ParseStruct(filepath.Join("testdata", "simple", "user.go"), "NotAStruct")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不是结构体类型")
}
