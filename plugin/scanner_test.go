package plugin

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanner_AnnotatedStruct(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "model.go", `package model

// User 用户
// @Track
type User struct {
	Name string
}

// Plain 无注解
type Plain struct {
	A int
}
`)

	scanner := NewScanner(WithAnnotationFilter("Track"))
	result, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, result.Structs, 1)
	target := result.Structs[0]
	assert.Equal(t, "User", target.Target.Name)
	assert.Equal(t, "model", target.Target.PackageName)
	assert.Equal(t, TargetStruct, target.Target.Kind)
	assert.Equal(t, 5, target.Target.Position.Line)
	require.Len(t, target.Annotations, 1)
	assert.Equal(t, "Track", target.Annotations[0].Name)
}

func TestScanner_SkipsGeneratedAndTestFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "model_track.go", `package model

// @Track
type Generated struct{}
`)
	writeTestFile(t, dir, "model_test.go", `package model

// @Track
type FromTest struct{}
`)

	scanner := NewScanner(WithAnnotationFilter("Track"))
	result, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, result.Structs)
}

func TestScanner_PackageConfig(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "model.go", "package model\n\n//go:trackgen: -output `$FILE_track`\n\n// @Track\ntype User struct{ Name string }\n")

	scanner := NewScanner(WithAnnotationFilter("Track"))
	result, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)

	require.Contains(t, result.PackageConfigs, dir)
	assert.Equal(t, "$FILE_track", result.PackageConfigs[dir].DefaultOutput)
}

func TestScanner_QuickMatchFile(t *testing.T) {
	dir := t.TempDir()
	with := writeTestFile(t, dir, "with.go", "package p\n\n// @Track\ntype A struct{}\n")
	without := writeTestFile(t, dir, "without.go", "package p\n\ntype B struct{}\n")

	scanner := NewScanner(WithAnnotationFilter("Track"))

	matched, err := scanner.QuickMatchFile(with)
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = scanner.QuickMatchFile(without)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestParseConfigLine(t *testing.T) {
	config := parseConfigLine("-output `$FILE_track`", "/tmp/pkg/a.go")
	require.NotNil(t, config)
	assert.Equal(t, "$FILE_track", config.DefaultOutput)

	config = parseConfigLine("plugin:tracker -output `custom`", "/tmp/pkg/a.go")
	require.NotNil(t, config)
	assert.Equal(t, "custom", config.PluginOutputs["tracker"])
	assert.Empty(t, config.DefaultOutput)

	assert.Nil(t, parseConfigLine("", "/tmp/pkg/a.go"))
}

func TestGetOutputPath(t *testing.T) {
	target := &Target{
		Name:        "User",
		PackageName: "model",
		FilePath:    "/tmp/pkg/user.go",
	}

	// 默认文件名
	path := GetOutputPath(target, "$FILE_track.go", nil, "tracker", "")
	assert.Equal(t, filepath.Join("/tmp/pkg", "user_track.go"), path)

	// 包级配置优先
	pkgConfig := &PackageConfig{
		PackageDir:    "/tmp/pkg",
		PluginOutputs: map[string]string{"tracker": "$PACKAGE_out"},
	}
	path = GetOutputPath(target, "$FILE_track.go", pkgConfig, "tracker", "")
	assert.Equal(t, filepath.Join("/tmp/pkg", "model_out.go"), path)

	// 命令行参数兜底
	path = GetOutputPath(target, "$FILE_track.go", nil, "tracker", "cli_out")
	assert.Equal(t, filepath.Join("/tmp/pkg", "cli_out.go"), path)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	gen := &fakeGenerator{BaseGenerator: NewBaseGenerator("fake", []string{"Fake"}, []TargetKind{TargetStruct})}
	require.NoError(t, registry.Register(gen))

	// 重复注册报错
	gen2 := &fakeGenerator{BaseGenerator: NewBaseGenerator("fake2", []string{"Fake"}, []TargetKind{TargetStruct})}
	require.Error(t, registry.Register(gen2))

	got, ok := registry.GetByAnnotation("Fake")
	assert.True(t, ok)
	assert.Equal(t, "fake", got.Name())
	assert.True(t, registry.IsRegistered("Fake"))
}

type fakeGenerator struct {
	*BaseGenerator
}

func (g *fakeGenerator) Generate(ctx *GenerateContext) (*GenerateResult, error) {
	return NewGenerateResult(), nil
}
