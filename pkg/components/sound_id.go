package components

// SoundID 音效标识
// 模拟核心只发出音效请求，具体播放由 game.SoundPlayer 的实现负责
type SoundID int

const (
	SoundShoot       SoundID = iota // 玩家射击
	SoundExplosion                  // 炸弹爆炸 / 游戏结束
	SoundAchievement                // 拾取道具 / 打破纪录
	SoundSoundtrack                 // 背景音乐（循环）
)

// String 返回音效名称
func (s SoundID) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundExplosion:
		return "explosion"
	case SoundAchievement:
		return "achievement"
	case SoundSoundtrack:
		return "soundtrack"
	default:
		return "unknown"
	}
}
