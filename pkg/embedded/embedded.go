// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。cmd/ 下的工具没有根目录的嵌入资源，
// 未初始化时 LoadGameConfig 退回到 config.DefaultGameConfig()。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/decker502/skyshooter/pkg/config"
)

// GameConfigPath 嵌入的默认游戏配置
const GameConfigPath = "data/game.yaml"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符并校验前缀
func normalize(path string) (string, error) {
	if !initialized {
		return "", fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// Open 打开嵌入文件，路径必须以 "data/" 开头
func Open(path string) (fs.File, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile 读取嵌入文件内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于嵌入资源中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// LoadGameConfig 加载游戏配置
//
// 参数：
//   - overridePath: 外部配置文件路径，为空时使用嵌入的 data/game.yaml
//
// 返回：
//   - *config.GameConfig: 配置；未初始化且没有外部文件时为默认配置
//   - error: 读取、解析或校验失败
func LoadGameConfig(overridePath string) (*config.GameConfig, error) {
	if overridePath != "" {
		return config.LoadGameConfig(overridePath)
	}
	if !initialized {
		return config.DefaultGameConfig(), nil
	}

	data, err := ReadFile(GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return config.ParseGameConfig(data)
}
