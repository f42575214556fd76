//go:build mobile

package utils

// MobileEmulateEnv 移动端无需模拟，保留常量以便两端代码一致
const MobileEmulateEnv = "SKYSHOOTER_MOBILE_EMULATE"

// IsMobile 移动端编译时始终返回 true
func IsMobile() bool {
	return true
}
