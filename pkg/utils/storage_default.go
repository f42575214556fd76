//go:build !android

package utils

// EnsureStorageDir 确保存储目录存在
// 非 Android 平台由 gdata 自动创建，无需处理
func EnsureStorageDir(appName string) error {
	return nil
}
