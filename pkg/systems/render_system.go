package systems

import (
	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/ecs"
)

// RenderSystem 把实体生命周期同步到渲染接收端
//   - Attach: 实体从待加入队列进入世界时注册渲染句柄
//   - Update: 每帧把存活实体的位置发布给接收端
//   - Cleanup: 注销死亡实体的渲染句柄并把它们从世界中移除
type RenderSystem struct {
	entityManager *ecs.EntityManager
	sink          RenderSink
}

// NewRenderSystem 创建渲染同步系统
func NewRenderSystem(em *ecs.EntityManager, sink RenderSink) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		sink:          sink,
	}
}

// Attach 为刚加入世界的实体注册渲染句柄
func (s *RenderSystem) Attach(ids []ecs.EntityID) {
	for _, id := range ids {
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.sink.Attach(id, *sprite)
	}
}

// Update 发布所有存活实体的位置
func (s *RenderSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.LifeComponent, *components.PositionComponent](s.entityManager) {
		life, _ := ecs.GetComponent[*components.LifeComponent](s.entityManager, id)
		if !life.IsAlive() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.sink.Move(id, pos.X, pos.Y)
	}
}

// Cleanup 移除所有已死亡的活跃实体
//
// 返回:
//   - int: 本帧移除的实体数量
func (s *RenderSystem) Cleanup() int {
	removed := 0
	for _, id := range s.entityManager.Entities() {
		life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id)
		if ok && life.IsAlive() {
			continue
		}
		if ecs.HasComponent[*components.SpriteComponent](s.entityManager, id) {
			s.sink.Detach(id)
		}
		s.entityManager.DestroyEntity(id)
		removed++
	}
	s.entityManager.RemoveMarkedEntities()
	return removed
}
