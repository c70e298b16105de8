package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testParams struct {
	Mode    string `param:"name=mode,required=false,default=fast,description=运行模式"`
	Count   int    `param:"name=count,required=false,default=3,description=数量"`
	Verbose bool   `param:"name=verbose,required=false,default=,description=详细输出"`
}

func TestParseParamsFromStruct(t *testing.T) {
	defs := ParseParamsFromStruct(testParams{})
	require.Len(t, defs, 3)

	assert.Equal(t, "mode", defs[0].Name)
	assert.Equal(t, "fast", defs[0].Default)
	assert.Equal(t, "运行模式", defs[0].Description)
	assert.False(t, defs[0].Required)

	assert.Equal(t, "count", defs[1].Name)
	assert.Equal(t, "3", defs[1].Default)
}

func TestParseAnnotationParams(t *testing.T) {
	defs := ParseParamsFromStruct(testParams{})
	ann := &Annotation{
		Name:   "Test",
		Params: map[string]string{"mode": "slow", "verbose": "true"},
	}

	var params testParams
	err := ParseAnnotationParams(ann, &params, defs)
	require.NoError(t, err)

	assert.Equal(t, "slow", params.Mode)
	assert.Equal(t, 3, params.Count) // 未指定时使用默认值
	assert.True(t, params.Verbose)
}

func TestParseAnnotationParams_InvalidInt(t *testing.T) {
	defs := ParseParamsFromStruct(testParams{})
	ann := &Annotation{
		Name:   "Test",
		Params: map[string]string{"count": "abc"},
	}

	var params testParams
	err := ParseAnnotationParams(ann, &params, defs)
	require.Error(t, err)
}

func TestSplitTag(t *testing.T) {
	pairs := splitTag(`name=mode,description=a\,b`)
	assert.Equal(t, "mode", pairs["name"])
	assert.Equal(t, "a,b", pairs["description"])
}
