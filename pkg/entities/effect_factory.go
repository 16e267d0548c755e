package entities

import (
	"fmt"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// NewShieldEffect 创建跟随玩家的护盾光环实体
// 光环比玩家大一圈，位置 = 玩家位置 - 偏移量，使其居中覆盖玩家
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - owner: 光环跟随的玩家实体
//
// 返回:
//   - ecs.EntityID: 创建的效果实体ID，如果失败返回 0
//   - error: 如果 owner 不存在或没有位置组件返回错误
func NewShieldEffect(em *ecs.EntityManager, cfg *config.GameConfig, owner ecs.EntityID) (ecs.EntityID, error) {
	if err := checkArgs(em, cfg); err != nil {
		return 0, err
	}

	ownerPos, ok := ecs.GetComponent[*components.PositionComponent](em, owner)
	if !ok {
		return 0, fmt.Errorf("shield owner %d has no position", owner)
	}

	fx := cfg.Effects
	entityID := newBody(em, body{
		x:        ownerPos.X - fx.ShieldOffsetX,
		y:        ownerPos.Y - fx.ShieldOffsetY,
		width:    fx.ShieldWidth,
		height:   fx.ShieldHeight,
		category: types.CategoryEffect,
		spriteID: types.SpriteIDShield,
	})

	em.AddComponent(entityID, &components.ShieldEffectComponent{
		Owner:   owner,
		OffsetX: fx.ShieldOffsetX,
		OffsetY: fx.ShieldOffsetY,
	})

	return entityID, nil
}
