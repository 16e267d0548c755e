package entities

import (
	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// NewBullet 创建玩家子弹实体
// 子弹以 cfg.Bullets.Speed 向上飞行，speedX 为横向速度（散弹 ±SpreadSpeedX）
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - centerX: 子弹水平中心（世界坐标），通常为机头中心
//   - y: 子弹顶部Y坐标
//   - super: 是否使用超级子弹属性（伤害、尺寸、贴图）
//   - speedX: 横向速度
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewBullet(em *ecs.EntityManager, cfg *config.GameConfig, centerX, y float64, super bool, speedX float64) (ecs.EntityID, error) {
	if err := checkArgs(em, cfg); err != nil {
		return 0, err
	}

	stats := cfg.Bullets.Normal
	spriteID := types.SpriteIDBullet
	if super {
		stats = cfg.Bullets.Super
		spriteID = types.SpriteIDSuperBullet
	}

	entityID := newBody(em, body{
		x:        centerX - stats.Width/2,
		y:        y,
		width:    stats.Width,
		height:   stats.Height,
		category: types.CategoryBulletPlayer,
		spriteID: spriteID,
	})

	em.AddComponent(entityID, &components.BulletComponent{
		Damage: stats.Damage,
		SpeedX: speedX,
		SpeedY: cfg.Bullets.Speed,
	})

	return entityID, nil
}
