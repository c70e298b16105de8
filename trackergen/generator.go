package trackergen

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/donutnomad/gg"
	"github.com/donutnomad/trackgen/internal/structparse"
	"github.com/donutnomad/trackgen/plugin"
)

// DefaultOutputFileName 默认输出文件名模板
const DefaultOutputFileName = "$FILE_track.go"

// TrackerGenerator 变更跟踪代码生成器
// 为 @Track 标注的结构体重新生成同名类型，注入 tracker 位掩码字段，
// 并为每个字段生成 Get/GetMut/Update/Set/Changed 访问器
type TrackerGenerator struct {
	*plugin.BaseGenerator
}

// New 创建变更跟踪生成器
func New() *TrackerGenerator {
	return &TrackerGenerator{
		BaseGenerator: plugin.NewBaseGenerator(
			"trackergen",
			[]string{"Track"},
			[]plugin.TargetKind{plugin.TargetStruct},
		),
	}
}

// NewParams 不接受任何注解参数
func (g *TrackerGenerator) NewParams() any {
	return nil
}

// Generate 为每个目标结构体生成跟踪代码
// 同一源文件的多个结构体合并输出到同一个生成文件
func (g *TrackerGenerator) Generate(ctx *plugin.GenerateContext) (*plugin.GenerateResult, error) {
	result := plugin.NewGenerateResult()

	outputs := make(map[string]*gg.Generator)

	for _, target := range ctx.Targets {
		// 注解本身不接受参数，带参数视为用法错误
		if ann := plugin.GetAnnotation(target.Annotations, "Track"); ann != nil && len(ann.Params) > 0 {
			result.AddError(fmt.Errorf("%s: @Track 不接受参数", target.Target.Position))
			continue
		}

		info, err := structparse.ParseStruct(target.Target.FilePath, target.Target.Name)
		if err != nil {
			result.AddError(fmt.Errorf("%s: 解析结构体 %s 失败: %w", target.Target.Position, target.Target.Name, err))
			continue
		}

		model, err := buildModel(info)
		if err != nil {
			result.AddError(err)
			continue
		}

		pkgConfig := ctx.GetPackageConfig(pkgDirOf(target.Target.FilePath))
		outPath := plugin.GetOutputPath(target.Target, DefaultOutputFileName, pkgConfig, g.Name(), ctx.DefaultOutput)

		gen, ok := outputs[outPath]
		if !ok {
			gen = gg.New()
			gen.SetPackage(target.Target.PackageName)
			outputs[outPath] = gen
		}
		emitStruct(gen, model)

		if ctx.Verbose {
			fmt.Printf("[trackergen] %s -> %s\n", target.Target.Name, outPath)
			fmt.Printf("[trackergen] %s", spew.Sdump(model.Mask))
		}
	}

	for path, gen := range outputs {
		result.AddDefinition(path, gen)
	}

	return result, nil
}

func pkgDirOf(filePath string) string {
	return filepath.Dir(filePath)
}
