package entities

import (
	"log"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// NewPlayer 创建玩家战机实体
// 初始位置、生命值、移速和射击冷却均来自配置
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if err := checkArgs(em, cfg); err != nil {
		return 0, err
	}

	p := cfg.Player
	entityID := newBody(em, body{
		x:        p.StartX,
		y:        p.StartY,
		width:    p.Width,
		height:   p.Height,
		insetX:   p.InsetX,
		insetY:   p.InsetY,
		category: types.CategoryPlayer,
		spriteID: types.SpriteIDPlayer,
	})

	em.AddComponent(entityID, &components.PlayerComponent{
		HP:               p.StartHP,
		MaxHP:            p.MaxHP,
		BaseMoveSpeed:    p.MoveSpeed,
		MoveSpeed:        p.MoveSpeed,
		BaseFireCooldown: p.FireCooldown,
		AutoFireCooldown: p.AutoFireCooldown,
		FireCooldown:     p.FireCooldown,
	})

	log.Printf("[PlayerFactory] 创建玩家 %d at (%.0f, %.0f), HP=%d", entityID, p.StartX, p.StartY, p.StartHP)
	return entityID, nil
}
