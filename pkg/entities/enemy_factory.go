package entities

import (
	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// NewEnemy 创建敌机实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（敌机属性表）
//   - enemyType: 敌机类型
//   - x, y: 生成位置（左上角）
//   - multiplier: 难度倍率，作用于速度和生命值（生命值不低于基础值）
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, enemyType types.EnemyType, x, y, multiplier float64) (ecs.EntityID, error) {
	if err := checkArgs(em, cfg); err != nil {
		return 0, err
	}

	stats := cfg.Enemy(enemyType)
	entityID := newBody(em, body{
		x:        x,
		y:        y,
		width:    stats.Width,
		height:   stats.Height,
		insetX:   stats.InsetX,
		insetY:   stats.InsetY,
		category: types.CategoryEnemy,
		spriteID: enemyType.SpriteID(),
	})

	enemy := &components.EnemyComponent{
		Type:          enemyType,
		Speed:         stats.Speed,
		HP:            stats.HP,
		ScoreValue:    stats.Score,
		DirX:          1,
		PatrolSpeed:   stats.PatrolSpeed,
		SwayFrequency: stats.SwayFrequency,
		SwayAmplitude: stats.SwayAmplitude,
	}
	enemy.ApplyDifficulty(multiplier)
	em.AddComponent(entityID, enemy)

	return entityID, nil
}
