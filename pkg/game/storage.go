package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/skyshooter/pkg/utils"
)

// AppName 存储目录使用的应用名
const AppName = "skyshooter"

// OpenStorage 打开跨平台存储
// 打开失败不是致命错误：返回 nil，设置和纪录退化为仅内存保存
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(appName); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Storage] Warning: failed to open storage %q: %v (persistence disabled)", appName, err)
		return nil
	}
	return manager
}
