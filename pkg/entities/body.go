// Package entities 提供各类游戏实体的工厂函数
//
// 工厂创建的实体处于待加入状态，在下一帧的加入阶段才会进入世界；
// 这就是"生成请求队列"：系统在帧内调用工厂，不会修改正在遍历的活跃实体集合。
package entities

import (
	"fmt"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// body 所有实体共享的基础记录
type body struct {
	x, y           float64
	width, height  float64
	insetX, insetY float64
	category       types.Category
	spriteID       string
}

// checkArgs 校验工厂的公共参数
func checkArgs(em *ecs.EntityManager, cfg *config.GameConfig) error {
	if em == nil {
		return fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return fmt.Errorf("game config cannot be nil")
	}
	return nil
}

// newBody 创建实体并挂载位置、尺寸、分类、存活和精灵组件
func newBody(em *ecs.EntityManager, b body) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: b.x, Y: b.y})
	em.AddComponent(entityID, &components.BoundsComponent{
		Width:  b.width,
		Height: b.height,
		InsetX: b.insetX,
		InsetY: b.insetY,
	})
	em.AddComponent(entityID, &components.CategoryComponent{Category: b.category})
	em.AddComponent(entityID, components.NewLifeComponent())
	em.AddComponent(entityID, &components.SpriteComponent{
		SpriteID: b.spriteID,
		Width:    b.width,
		Height:   b.height,
	})

	return entityID
}
