package components

// PowerUpType 道具效果类型
type PowerUpType int

const (
	PowerUpShield     PowerUpType = iota // 护盾：一段时间内免疫伤害
	PowerUpDoubleShot                    // 双发射击
	PowerUpTripleShot                    // 三发散射
	PowerUpBomb                          // 炸弹库存 +1
	PowerUpExtraLife                     // 生命 +1
	PowerUpScoreSmall                    // 小额加分
	PowerUpScoreLarge                    // 大额加分
)

// NormalTierPowerUps 常见道具（60% 概率从此档位抽取）
var NormalTierPowerUps = []PowerUpType{
	PowerUpShield,
	PowerUpDoubleShot,
	PowerUpExtraLife,
	PowerUpScoreSmall,
}

// LowTierPowerUps 稀有道具（40% 概率从此档位抽取）
var LowTierPowerUps = []PowerUpType{
	PowerUpBomb,
	PowerUpTripleShot,
	PowerUpScoreLarge,
}

// String 返回道具类型名称（与配置文件、日志中的命名一致）
func (p PowerUpType) String() string {
	switch p {
	case PowerUpShield:
		return "shield"
	case PowerUpDoubleShot:
		return "double_shoot"
	case PowerUpTripleShot:
		return "triple_shoot"
	case PowerUpBomb:
		return "bomb"
	case PowerUpExtraLife:
		return "live"
	case PowerUpScoreSmall:
		return "score"
	case PowerUpScoreLarge:
		return "bonus_score"
	default:
		return "unknown"
	}
}

// Icon 返回 HUD 与道具本体显示的短标签
func (p PowerUpType) Icon() string {
	switch p {
	case PowerUpShield:
		return "SH"
	case PowerUpDoubleShot:
		return "x2"
	case PowerUpTripleShot:
		return "x3"
	case PowerUpBomb:
		return "BM"
	case PowerUpExtraLife:
		return "+1"
	case PowerUpScoreSmall:
		return "50"
	case PowerUpScoreLarge:
		return "100"
	default:
		return "?"
	}
}
