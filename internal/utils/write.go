package utils

import (
	"fmt"
	"os"

	"golang.org/x/tools/imports"
)

// WriteFormat 格式化 Go 源码并写入文件
// 使用 goimports 风格的格式化，同时整理 import 分组
func WriteFormat(path string, src []byte) error {
	formatted, err := imports.Process(path, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		// 格式化失败时写入原始内容，便于排查生成错误
		if writeErr := os.WriteFile(path, src, 0644); writeErr != nil {
			return writeErr
		}
		return fmt.Errorf("格式化失败（已写入未格式化内容）: %w", err)
	}

	return os.WriteFile(path, formatted, 0644)
}
