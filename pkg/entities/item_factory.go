package entities

import (
	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// NewItem 创建道具实体
// 道具在敌机死亡位置生成，以恒定速度下落
func NewItem(em *ecs.EntityManager, cfg *config.GameConfig, itemType types.ItemType, x, y float64) (ecs.EntityID, error) {
	if err := checkArgs(em, cfg); err != nil {
		return 0, err
	}

	entityID := newBody(em, body{
		x:        x,
		y:        y,
		width:    cfg.Items.Width,
		height:   cfg.Items.Height,
		category: types.CategoryPowerup,
		spriteID: itemType.SpriteID(),
	})

	em.AddComponent(entityID, &components.ItemComponent{
		Type:      itemType,
		FallSpeed: cfg.Items.FallSpeed,
	})

	return entityID, nil
}
