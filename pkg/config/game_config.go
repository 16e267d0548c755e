package config

import (
	"fmt"
	"os"

	"github.com/decker502/airbattle/pkg/types"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏全部可调参数
// 所有字段都有默认值（见 DefaultGameConfig），YAML 文件只需覆盖需要修改的部分
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`      // 场地尺寸与出界规则
	Spawn      SpawnConfig      `yaml:"spawn"`      // 敌机生成计时与位置
	Difficulty DifficultyConfig `yaml:"difficulty"` // 难度曲线
	Enemies    EnemiesConfig    `yaml:"enemies"`    // 敌机属性表
	Player     PlayerConfig     `yaml:"player"`     // 玩家属性
	Bullets    BulletsConfig    `yaml:"bullets"`    // 子弹属性
	Items      ItemsConfig      `yaml:"items"`      // 道具与掉落
	Effects    EffectsConfig    `yaml:"effects"`    // 视觉效果
}

// WorldConfig 场地配置
type WorldConfig struct {
	Width           float64 `yaml:"width"`           // 场地宽度（场地尺寸查询不可用时的回退值）
	Height          float64 `yaml:"height"`          // 场地高度
	MinValidWidth   float64 `yaml:"minValidWidth"`   // 查询到的宽度小于该值时视为布局未就绪，使用回退值
	OffscreenMargin float64 `yaml:"offscreenMargin"` // 实体完全离开场地超过该距离后被销毁
	MaxDeltaTime    float64 `yaml:"maxDeltaTime"`    // 单帧 dt 上限（秒）
}

// SpawnConfig 敌机生成配置
type SpawnConfig struct {
	BaseInterval float64 `yaml:"baseInterval"` // 0 级时的生成间隔（秒）
	MinInterval  float64 `yaml:"minInterval"`  // 生成间隔下限（秒）
	IntervalStep float64 `yaml:"intervalStep"` // 每级缩短的间隔（秒）
	Jitter       float64 `yaml:"jitter"`       // 间隔随机抖动上限（秒）
	MarginX      float64 `yaml:"marginX"`      // 生成点距场地左右边缘的最小距离
	SpawnY       float64 `yaml:"spawnY"`       // 生成点Y坐标（场地上方）
}

// DifficultyConfig 难度曲线配置
type DifficultyConfig struct {
	ScorePerLevel      int     `yaml:"scorePerLevel"`      // 每级所需分数
	MaxLevel           int     `yaml:"maxLevel"`           // 难度等级上限
	BossChanceBase     int     `yaml:"bossChanceBase"`     // 0 级时大型敌机概率（%）
	FastChanceBase     int     `yaml:"fastChanceBase"`     // 0 级时快速敌机概率（%）
	ChancePerLevel     int     `yaml:"chancePerLevel"`     // 每级增加的概率（%，两种敌机各自增加）
	StatMultiplierStep float64 `yaml:"statMultiplierStep"` // 每级增加的属性倍率
}

// EnemyStats 单种敌机的基础属性
type EnemyStats struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	InsetX        float64 `yaml:"insetX"`
	InsetY        float64 `yaml:"insetY"`
	Speed         float64 `yaml:"speed"`         // 下降速度
	HP            int     `yaml:"hp"`            // 基础生命值
	Score         int     `yaml:"score"`         // 击毁得分
	PatrolSpeed   float64 `yaml:"patrolSpeed"`   // 巡逻横向速度（快速/大型）
	SwayFrequency float64 `yaml:"swayFrequency"` // 正弦摆动频率（普通）
	SwayAmplitude float64 `yaml:"swayAmplitude"` // 正弦摆动幅度（普通）
}

// EnemiesConfig 敌机属性表
type EnemiesConfig struct {
	Normal EnemyStats `yaml:"normal"`
	Fast   EnemyStats `yaml:"fast"`
	Boss   EnemyStats `yaml:"boss"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	StartX           float64 `yaml:"startX"`
	StartY           float64 `yaml:"startY"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	InsetX           float64 `yaml:"insetX"`
	InsetY           float64 `yaml:"insetY"`
	StartHP          int     `yaml:"startHP"`
	MaxHP            int     `yaml:"maxHP"`
	MoveSpeed        float64 `yaml:"moveSpeed"`
	FireCooldown     float64 `yaml:"fireCooldown"`
	AutoFireCooldown float64 `yaml:"autoFireCooldown"`
	MuzzleOffsetY    float64 `yaml:"muzzleOffsetY"` // 子弹生成点在机头上方的距离
}

// BulletStats 单种子弹的属性
type BulletStats struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Damage int     `yaml:"damage"`
}

// BulletsConfig 子弹配置
type BulletsConfig struct {
	Speed        float64     `yaml:"speed"`        // 向上飞行速度
	SpreadSpeedX float64     `yaml:"spreadSpeedX"` // 散弹横向速度
	Normal       BulletStats `yaml:"normal"`
	Super        BulletStats `yaml:"super"`
}

// ItemWeights 道具掉落权重（按 Heal, Rampage, SuperBullet, Shotgun, Shield 顺序分桶）
type ItemWeights struct {
	Heal        int `yaml:"heal"`
	Rampage     int `yaml:"rampage"`
	SuperBullet int `yaml:"superBullet"`
	Shotgun     int `yaml:"shotgun"`
	Shield      int `yaml:"shield"`
}

// ItemsConfig 道具配置
type ItemsConfig struct {
	Width            float64     `yaml:"width"`
	Height           float64     `yaml:"height"`
	FallSpeed        float64     `yaml:"fallSpeed"`
	BuffDuration     float64     `yaml:"buffDuration"`     // 限时增益持续时间（秒）
	ShieldSpeedBonus float64     `yaml:"shieldSpeedBonus"` // 护盾附带的移速加成
	HealAmount       int         `yaml:"healAmount"`
	DropRatePercent  int         `yaml:"dropRatePercent"` // 敌机被击毁时的总掉落概率（%）
	Weights          ItemWeights `yaml:"weights"`
}

// EffectsConfig 视觉效果配置
type EffectsConfig struct {
	ShieldWidth   float64 `yaml:"shieldWidth"`
	ShieldHeight  float64 `yaml:"shieldHeight"`
	ShieldOffsetX float64 `yaml:"shieldOffsetX"`
	ShieldOffsetY float64 `yaml:"shieldOffsetY"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Width:           900,
			Height:          600,
			MinValidWidth:   100,
			OffscreenMargin: 80,
			MaxDeltaTime:    0.05,
		},
		Spawn: SpawnConfig{
			BaseInterval: 0.8,
			MinInterval:  0.2,
			IntervalStep: 0.04,
			Jitter:       0.3,
			MarginX:      20,
			SpawnY:       -60,
		},
		Difficulty: DifficultyConfig{
			ScorePerLevel:      500,
			MaxLevel:           25,
			BossChanceBase:     10,
			FastChanceBase:     25,
			ChancePerLevel:     1,
			StatMultiplierStep: 0.1,
		},
		Enemies: EnemiesConfig{
			Normal: EnemyStats{Width: 40, Height: 40, Speed: 200, HP: 1, Score: 100, SwayFrequency: 0.05, SwayAmplitude: 50},
			Fast:   EnemyStats{Width: 40, Height: 40, Speed: 240, HP: 1, Score: 150, PatrolSpeed: 260},
			Boss:   EnemyStats{Width: 120, Height: 120, InsetX: 14, InsetY: 14, Speed: 120, HP: 10, Score: 1000, PatrolSpeed: 260},
		},
		Player: PlayerConfig{
			StartX:           430,
			StartY:           480,
			Width:            40,
			Height:           40,
			InsetX:           6,
			InsetY:           6,
			StartHP:          3,
			MaxHP:            5,
			MoveSpeed:        220,
			FireCooldown:     0.25,
			AutoFireCooldown: 0.1,
			MuzzleOffsetY:    20,
		},
		Bullets: BulletsConfig{
			Speed:        400,
			SpreadSpeedX: 100,
			Normal:       BulletStats{Width: 6, Height: 12, Damage: 1},
			Super:        BulletStats{Width: 20, Height: 60, Damage: 5},
		},
		Items: ItemsConfig{
			Width:            40,
			Height:           40,
			FallSpeed:        80,
			BuffDuration:     10,
			ShieldSpeedBonus: 100,
			HealAmount:       1,
			DropRatePercent:  25,
			Weights: ItemWeights{
				Heal:        30,
				Rampage:     20,
				SuperBullet: 20,
				Shotgun:     20,
				Shield:      10,
			},
		},
		Effects: EffectsConfig{
			ShieldWidth:   80,
			ShieldHeight:  80,
			ShieldOffsetX: 20,
			ShieldOffsetY: 20,
		},
	}
}

// Enemy 返回指定敌机类型的属性
func (c *GameConfig) Enemy(enemyType types.EnemyType) EnemyStats {
	switch enemyType {
	case types.EnemyFast:
		return c.Enemies.Fast
	case types.EnemyBoss:
		return c.Enemies.Boss
	default:
		return c.Enemies.Normal
	}
}

// Ordered 按固定分桶顺序返回权重
func (w ItemWeights) Ordered() []int {
	return []int{w.Heal, w.Rampage, w.SuperBullet, w.Shotgun, w.Shield}
}

// Total 返回权重总和
func (w ItemWeights) Total() int {
	total := 0
	for _, weight := range w.Ordered() {
		total += weight
	}
	return total
}

// LoadGameConfig 从 YAML 文件加载游戏配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据，未出现的字段保留默认值
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
	// 场地
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.OffscreenMargin < 0 {
		return fmt.Errorf("world.offscreenMargin must be >= 0, got %v", cfg.World.OffscreenMargin)
	}
	if cfg.World.MaxDeltaTime <= 0 {
		return fmt.Errorf("world.maxDeltaTime must be > 0, got %v", cfg.World.MaxDeltaTime)
	}

	// 生成
	if cfg.Spawn.MinInterval <= 0 {
		return fmt.Errorf("spawn.minInterval must be > 0, got %v", cfg.Spawn.MinInterval)
	}
	if cfg.Spawn.BaseInterval < cfg.Spawn.MinInterval {
		return fmt.Errorf("spawn.baseInterval (%v) must be >= spawn.minInterval (%v)", cfg.Spawn.BaseInterval, cfg.Spawn.MinInterval)
	}
	if cfg.Spawn.IntervalStep < 0 || cfg.Spawn.Jitter < 0 {
		return fmt.Errorf("spawn.intervalStep and spawn.jitter must be >= 0")
	}
	if cfg.Spawn.MarginX < 0 || 2*cfg.Spawn.MarginX >= cfg.World.Width {
		return fmt.Errorf("spawn.marginX must be in [0, %v), got %v", cfg.World.Width/2, cfg.Spawn.MarginX)
	}

	// 难度
	d := cfg.Difficulty
	if d.ScorePerLevel <= 0 {
		return fmt.Errorf("difficulty.scorePerLevel must be > 0, got %d", d.ScorePerLevel)
	}
	if d.MaxLevel < 0 {
		return fmt.Errorf("difficulty.maxLevel must be >= 0, got %d", d.MaxLevel)
	}
	if d.BossChanceBase < 0 || d.FastChanceBase < 0 || d.ChancePerLevel < 0 {
		return fmt.Errorf("difficulty chances must be >= 0")
	}
	if peak := d.BossChanceBase + d.FastChanceBase + 2*d.ChancePerLevel*d.MaxLevel; peak > 100 {
		return fmt.Errorf("boss+fast chance at max level exceeds 100%% (%d)", peak)
	}
	if d.StatMultiplierStep < 0 {
		return fmt.Errorf("difficulty.statMultiplierStep must be >= 0, got %v", d.StatMultiplierStep)
	}

	// 敌机
	for _, enemyType := range []types.EnemyType{types.EnemyNormal, types.EnemyFast, types.EnemyBoss} {
		stats := cfg.Enemy(enemyType)
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("enemies.%s size must be positive", enemyType)
		}
		if stats.HP < 1 {
			return fmt.Errorf("enemies.%s.hp must be >= 1, got %d", enemyType, stats.HP)
		}
		if stats.Score < 0 {
			return fmt.Errorf("enemies.%s.score must be >= 0, got %d", enemyType, stats.Score)
		}
	}

	// 玩家
	p := cfg.Player
	if p.StartHP < 1 || p.MaxHP < p.StartHP {
		return fmt.Errorf("player hp must satisfy 1 <= startHP <= maxHP, got %d/%d", p.StartHP, p.MaxHP)
	}
	if p.FireCooldown <= 0 || p.AutoFireCooldown <= 0 {
		return fmt.Errorf("player fire cooldowns must be > 0")
	}

	// 道具
	if cfg.Items.DropRatePercent < 0 || cfg.Items.DropRatePercent > 100 {
		return fmt.Errorf("items.dropRatePercent must be between 0 and 100, got %d", cfg.Items.DropRatePercent)
	}
	for _, weight := range cfg.Items.Weights.Ordered() {
		if weight < 0 {
			return fmt.Errorf("item weights must be >= 0, got %d", weight)
		}
	}
	if cfg.Items.Weights.Total() <= 0 {
		return fmt.Errorf("item weights must sum to > 0")
	}

	return nil
}
