package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 窗口与逻辑画面尺寸
// 原版画布比例为 1400:900，这里保持相同比例
const (
	GameWindowWidth  = 1120
	GameWindowHeight = 720
)

// GameConfig 游戏数值配置
// 所有玩法常量集中在这里，默认值见 DefaultGameConfig，可由 YAML 文件覆盖
type GameConfig struct {
	World     WorldConfig     `yaml:"world"`     // 世界尺寸、滚动和帧驱动参数
	Player    PlayerConfig    `yaml:"player"`    // 玩家飞船
	Bullet    BulletConfig    `yaml:"bullet"`    // 玩家子弹与敌人子弹
	Enemy     EnemyConfig     `yaml:"enemy"`     // 敌人个体属性
	Spawn     SpawnConfig     `yaml:"spawn"`     // 波次生成与难度缩放
	PowerUp   PowerUpConfig   `yaml:"powerUp"`   // 道具
	Particle  ParticleConfig  `yaml:"particle"`  // 命中粒子
	Collision CollisionConfig `yaml:"collision"` // 碰撞容差
	Score     ScoreConfig     `yaml:"score"`     // 计分
}

// WorldConfig 世界配置
type WorldConfig struct {
	Width           float64 `yaml:"width"`           // 世界宽度（像素）
	Height          float64 `yaml:"height"`          // 世界高度（像素）
	BackgroundSpeed float64 `yaml:"backgroundSpeed"` // 背景滚动速度（像素/秒）
	MaxFrameDelta   float64 `yaml:"maxFrameDelta"`   // 单帧 dt 上限（秒），防止卡顿后大步长穿透
	WaveInterval    float64 `yaml:"waveInterval"`    // 敌人波次间隔（秒，墙钟时间）
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	BottomMargin         float64 `yaml:"bottomMargin"`         // 距离世界底部的间距
	BaseSpeed            float64 `yaml:"baseSpeed"`            // 水平移动速度（像素/秒）
	FireRate             float64 `yaml:"fireRate"`             // 普通射速（发/秒），双发和三发为两倍
	Lives                int     `yaml:"lives"`                // 初始生命
	Bombs                int     `yaml:"bombs"`                // 初始炸弹
	InvulnerableDuration float64 `yaml:"invulnerableDuration"` // 受击后无敌时间（秒）
	DoubleShotSpacing    float64 `yaml:"doubleShotSpacing"`    // 双发子弹间距
	TripleShotOffset     float64 `yaml:"tripleShotOffset"`     // 三发两侧子弹的水平偏移
	TripleShotAngle      float64 `yaml:"tripleShotAngle"`      // 三发两侧子弹的偏转角（度）
}

// BulletConfig 子弹配置
type BulletConfig struct {
	Speed              float64 `yaml:"speed"`              // 玩家子弹速度（像素/秒）
	Width              float64 `yaml:"width"`              // 普通/三发子弹宽度
	DoubleWidth        float64 `yaml:"doubleWidth"`        // 双发子弹宽度
	Height             float64 `yaml:"height"`             // 玩家子弹高度
	EnemyWidth         float64 `yaml:"enemyWidth"`         // 敌人子弹宽度
	EnemyHeight        float64 `yaml:"enemyHeight"`        // 敌人子弹高度
	EnemySpeedDeltaMin int     `yaml:"enemySpeedDeltaMin"` // 敌人子弹相对敌人速度的最小增量
	EnemySpeedDeltaMax int     `yaml:"enemySpeedDeltaMax"` // 敌人子弹相对敌人速度的最大增量（不包含）
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	ShootChance       float64 `yaml:"shootChance"`       // 生成时具备射击能力的概率
	FireRateMinCentis int     `yaml:"fireRateMinCentis"` // 射速下限（0.01 发/秒）
	FireRateMaxCentis int     `yaml:"fireRateMaxCentis"` // 射速上限（0.01 发/秒，不包含）
	SkinCount         int     `yaml:"skinCount"`         // 外观模板数量
}

// SpawnConfig 波次生成与难度缩放
//
// 第 n 个波次:
//
//	count    = round(clamp(n / ticksPerEnemy, 1, maxEnemies))
//	maxSpeed = clamp(minSpeed + n*speedPerTick, minSpeed, maxSpeed)
//	maxSize  = clamp(minSize + n*sizePerTick, minSize, maxSize)
type SpawnConfig struct {
	TicksPerEnemy float64 `yaml:"ticksPerEnemy"`
	MaxEnemies    float64 `yaml:"maxEnemies"`
	MinSpeed      float64 `yaml:"minSpeed"`
	MaxSpeed      float64 `yaml:"maxSpeed"`
	SpeedPerTick  float64 `yaml:"speedPerTick"`
	MinSize       float64 `yaml:"minSize"`
	MaxSize       float64 `yaml:"maxSize"`
	SizePerTick   float64 `yaml:"sizePerTick"`
}

// PowerUpConfig 道具配置
type PowerUpConfig struct {
	Speed            float64 `yaml:"speed"`            // 下落速度（像素/秒）
	Size             float64 `yaml:"size"`             // 默认边长
	WideWidth        float64 `yaml:"wideWidth"`        // 双发道具图标较宽
	IntervalMin      int     `yaml:"intervalMin"`      // 生成间隔下限（秒）
	IntervalMax      int     `yaml:"intervalMax"`      // 生成间隔上限（秒，不包含）
	NormalTierChance float64 `yaml:"normalTierChance"` // 从常见档位抽取的概率
	TimedDuration    float64 `yaml:"timedDuration"`    // 护盾/双发/三发每次增加的时长（秒）
	ScoreSmall       int     `yaml:"scoreSmall"`
	ScoreLarge       int     `yaml:"scoreLarge"`
}

// ParticleConfig 粒子配置
type ParticleConfig struct {
	Lifespan          float64 `yaml:"lifespan"` // 粒子寿命（秒）
	Gravity           float64 `yaml:"gravity"`  // 竖直加速度（像素/秒²）
	SpeedMin          int     `yaml:"speedMin"`
	SpeedMax          int     `yaml:"speedMax"`
	EnemyHit          int     `yaml:"enemyHit"`          // 子弹击毁敌人
	PlayerHitByBullet int     `yaml:"playerHitByBullet"` // 敌人子弹命中玩家
	PlayerHitByEnemy  int     `yaml:"playerHitByEnemy"`  // 敌人撞击玩家
	PowerUpPickup     int     `yaml:"powerUpPickup"`     // 拾取道具
	Bomb              int     `yaml:"bomb"`              // 炸弹击毁的每个敌人
}

// CollisionConfig 碰撞容差（负值放大碰撞盒，正值缩小）
type CollisionConfig struct {
	BulletEnemy       float64 `yaml:"bulletEnemy"`
	EnemyBulletPlayer float64 `yaml:"enemyBulletPlayer"`
	EnemyPlayer       float64 `yaml:"enemyPlayer"`
	PowerUpPlayer     float64 `yaml:"powerUpPlayer"`
}

// ScoreConfig 计分配置
type ScoreConfig struct {
	EnemyKill int `yaml:"enemyKill"`
}

// DefaultGameConfig 返回默认配置（与原版数值一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Width:           GameWindowWidth,
			Height:          GameWindowHeight,
			BackgroundSpeed: 140,
			MaxFrameDelta:   1.0 / 30.0,
			WaveInterval:    1.0,
		},
		Player: PlayerConfig{
			Width:                30,
			Height:               30,
			BottomMargin:         10,
			BaseSpeed:            360,
			FireRate:             7,
			Lives:                3,
			Bombs:                0,
			InvulnerableDuration: 2,
			DoubleShotSpacing:    30,
			TripleShotOffset:     10,
			TripleShotAngle:      10,
		},
		Bullet: BulletConfig{
			Speed:              980,
			Width:              5,
			DoubleWidth:        8,
			Height:             10,
			EnemyWidth:         10,
			EnemyHeight:        10,
			EnemySpeedDeltaMin: 100,
			EnemySpeedDeltaMax: 200,
		},
		Enemy: EnemyConfig{
			ShootChance:       0.3,
			FireRateMinCentis: 20,
			FireRateMaxCentis: 100,
			SkinCount:         5,
		},
		Spawn: SpawnConfig{
			TicksPerEnemy: 10,
			MaxEnemies:    25,
			MinSpeed:      80,
			MaxSpeed:      600,
			SpeedPerTick:  10,
			MinSize:       40,
			MaxSize:       100,
			SizePerTick:   10,
		},
		PowerUp: PowerUpConfig{
			Speed:            120,
			Size:             25,
			WideWidth:        40,
			IntervalMin:      10,
			IntervalMax:      20,
			NormalTierChance: 0.6,
			TimedDuration:    10,
			ScoreSmall:       50,
			ScoreLarge:       100,
		},
		Particle: ParticleConfig{
			Lifespan:          0.45,
			Gravity:           900,
			SpeedMin:          80,
			SpeedMax:          220,
			EnemyHit:          10,
			PlayerHitByBullet: 8,
			PlayerHitByEnemy:  14,
			PowerUpPickup:     8,
			Bomb:              15,
		},
		Collision: CollisionConfig{
			BulletEnemy:       -3,
			EnemyBulletPlayer: 2,
			EnemyPlayer:       2,
			PowerUpPlayer:     -2,
		},
		Score: ScoreConfig{
			EnemyKill: 10,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
// 文件中未出现的字段保留默认值
//
// 参数：
//   - filePath: 配置文件路径
//
// 返回：
//   - *GameConfig: 合并默认值后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据为游戏配置
// 用于嵌入资源（embedded.ReadFile）和测试
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(cfg *GameConfig) error {
	// 世界
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %.0fx%.0f", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.MaxFrameDelta <= 0 {
		return fmt.Errorf("world.maxFrameDelta must be > 0, got %v", cfg.World.MaxFrameDelta)
	}
	if cfg.World.WaveInterval <= 0 {
		return fmt.Errorf("world.waveInterval must be > 0, got %v", cfg.World.WaveInterval)
	}

	// 玩家
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	if cfg.Player.Width > cfg.World.Width {
		return fmt.Errorf("player width %.0f exceeds world width %.0f", cfg.Player.Width, cfg.World.Width)
	}
	if cfg.Player.FireRate <= 0 {
		return fmt.Errorf("player.fireRate must be > 0, got %v", cfg.Player.FireRate)
	}
	if cfg.Player.Lives < 1 {
		return fmt.Errorf("player.lives must be >= 1, got %d", cfg.Player.Lives)
	}
	if cfg.Player.Bombs < 0 {
		return fmt.Errorf("player.bombs must be >= 0, got %d", cfg.Player.Bombs)
	}

	// 子弹
	if cfg.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet.speed must be > 0, got %v", cfg.Bullet.Speed)
	}
	if cfg.Bullet.EnemySpeedDeltaMax < cfg.Bullet.EnemySpeedDeltaMin {
		return fmt.Errorf("bullet.enemySpeedDeltaMax (%d) must be >= enemySpeedDeltaMin (%d)",
			cfg.Bullet.EnemySpeedDeltaMax, cfg.Bullet.EnemySpeedDeltaMin)
	}

	// 敌人
	if cfg.Enemy.ShootChance < 0 || cfg.Enemy.ShootChance > 1 {
		return fmt.Errorf("enemy.shootChance must be between 0 and 1, got %v", cfg.Enemy.ShootChance)
	}
	if cfg.Enemy.FireRateMinCentis <= 0 || cfg.Enemy.FireRateMaxCentis < cfg.Enemy.FireRateMinCentis {
		return fmt.Errorf("enemy fire rate range invalid: [%d, %d)", cfg.Enemy.FireRateMinCentis, cfg.Enemy.FireRateMaxCentis)
	}
	if cfg.Enemy.SkinCount < 1 {
		return fmt.Errorf("enemy.skinCount must be >= 1, got %d", cfg.Enemy.SkinCount)
	}

	// 波次
	if cfg.Spawn.TicksPerEnemy <= 0 {
		return fmt.Errorf("spawn.ticksPerEnemy must be > 0, got %v", cfg.Spawn.TicksPerEnemy)
	}
	if cfg.Spawn.MaxEnemies < 1 {
		return fmt.Errorf("spawn.maxEnemies must be >= 1, got %v", cfg.Spawn.MaxEnemies)
	}
	if cfg.Spawn.MinSpeed <= 0 || cfg.Spawn.MaxSpeed < cfg.Spawn.MinSpeed {
		return fmt.Errorf("spawn speed range invalid: [%v, %v]", cfg.Spawn.MinSpeed, cfg.Spawn.MaxSpeed)
	}
	if cfg.Spawn.MinSize <= 0 || cfg.Spawn.MaxSize < cfg.Spawn.MinSize {
		return fmt.Errorf("spawn size range invalid: [%v, %v]", cfg.Spawn.MinSize, cfg.Spawn.MaxSize)
	}
	if cfg.Spawn.MaxSize > cfg.World.Width {
		return fmt.Errorf("spawn.maxSize %.0f exceeds world width %.0f", cfg.Spawn.MaxSize, cfg.World.Width)
	}

	// 道具
	if cfg.PowerUp.Speed <= 0 {
		return fmt.Errorf("powerUp.speed must be > 0, got %v", cfg.PowerUp.Speed)
	}
	if cfg.PowerUp.IntervalMin <= 0 || cfg.PowerUp.IntervalMax < cfg.PowerUp.IntervalMin {
		return fmt.Errorf("powerUp interval range invalid: [%d, %d)", cfg.PowerUp.IntervalMin, cfg.PowerUp.IntervalMax)
	}
	if cfg.PowerUp.NormalTierChance < 0 || cfg.PowerUp.NormalTierChance > 1 {
		return fmt.Errorf("powerUp.normalTierChance must be between 0 and 1, got %v", cfg.PowerUp.NormalTierChance)
	}

	// 粒子
	if cfg.Particle.Lifespan <= 0 {
		return fmt.Errorf("particle.lifespan must be > 0, got %v", cfg.Particle.Lifespan)
	}

	return nil
}
