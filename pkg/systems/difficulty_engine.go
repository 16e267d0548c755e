package systems

import (
	"math"

	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/types"
)

// DifficultyEngine 难度引擎
// 根据当前分数计算难度等级，并为敌机生成系统提供生成间隔、类型概率和属性倍率
type DifficultyEngine struct {
	difficulty config.DifficultyConfig
	spawn      config.SpawnConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(cfg *config.GameConfig) *DifficultyEngine {
	return &DifficultyEngine{
		difficulty: cfg.Difficulty,
		spawn:      cfg.Spawn,
	}
}

// Level 计算难度等级
// 公式: Level = min(MaxLevel, floor(score / ScorePerLevel))，负分按 0 处理
//
// 参数:
//
//	score - 当前分数
//
// 返回:
//
//	难度等级，范围 [0, MaxLevel]
func (d *DifficultyEngine) Level(score int) int {
	if score <= 0 {
		return 0
	}
	return min(d.difficulty.MaxLevel, score/d.difficulty.ScorePerLevel)
}

// SpawnInterval 计算指定等级下的基础生成间隔（不含随机抖动）
// 公式: max(MinInterval, BaseInterval - IntervalStep * Level)
func (d *DifficultyEngine) SpawnInterval(level int) float64 {
	return math.Max(d.spawn.MinInterval, d.spawn.BaseInterval-d.spawn.IntervalStep*float64(level))
}

// EnemyChances 返回指定等级下大型敌机与快速敌机的出现概率（百分比）
// 普通敌机为剩余部分
func (d *DifficultyEngine) EnemyChances(level int) (bossChance, fastChance int) {
	bonus := d.difficulty.ChancePerLevel * level
	return d.difficulty.BossChanceBase + bonus, d.difficulty.FastChanceBase + bonus
}

// PickEnemyType 根据 [0,100) 的掷骰结果选择敌机类型
// roll < boss → 大型；roll < boss+fast → 快速；否则普通
func (d *DifficultyEngine) PickEnemyType(roll, level int) types.EnemyType {
	bossChance, fastChance := d.EnemyChances(level)
	switch {
	case roll < bossChance:
		return types.EnemyBoss
	case roll < bossChance+fastChance:
		return types.EnemyFast
	default:
		return types.EnemyNormal
	}
}

// StatMultiplier 敌机属性倍率: 1 + StatMultiplierStep * Level
func (d *DifficultyEngine) StatMultiplier(level int) float64 {
	return 1 + d.difficulty.StatMultiplierStep*float64(level)
}
