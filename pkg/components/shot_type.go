package components

// ShotType 玩家子弹类型，决定子弹宽度和渲染颜色
type ShotType int

const (
	ShotNormal ShotType = iota // 普通子弹（白色）
	ShotDouble                 // 双发子弹（黄色，更宽）
	ShotTriple                 // 三发散射子弹（青色）
)

// String 返回子弹类型名称
func (s ShotType) String() string {
	switch s {
	case ShotNormal:
		return "normal"
	case ShotDouble:
		return "double"
	case ShotTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// FireMode 玩家当前生效的射击模式
// 由射击道具计时器决定，优先级：三发 > 双发 > 普通
type FireMode int

const (
	FireModeNormal FireMode = iota
	FireModeDouble
	FireModeTriple
)

// ShotType 返回该射击模式发射的子弹类型
func (m FireMode) ShotType() ShotType {
	switch m {
	case FireModeTriple:
		return ShotTriple
	case FireModeDouble:
		return ShotDouble
	default:
		return ShotNormal
	}
}
