package utils

import "github.com/decker502/skyshooter/pkg/components"

// Collision 检查两个轴对齐包围盒（AABB）是否重叠
//
// offset 是施加在边界上的带符号容差：
//   - 负值放大有效碰撞盒（判定更宽松，用于子弹命中、拾取道具）
//   - 正值缩小有效碰撞盒（判定更严格，用于玩家受击）
//
// 边界相切不算重叠
func Collision(a, b components.Box, offset float64) bool {
	return a.X < b.X+b.Width-offset &&
		a.X+a.Width > b.X+offset &&
		a.Y < b.Y+b.Height-offset &&
		a.Y+a.Height > b.Y+offset
}
