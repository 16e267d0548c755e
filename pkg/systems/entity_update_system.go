package systems

import (
	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// EntityUpdateSystem 按实体分类分派每帧更新
// 按活跃实体的加入顺序遍历，已死亡的实体不再更新
type EntityUpdateSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	playfield     Playfield
	playerSystem  *PlayerSystem
}

// NewEntityUpdateSystem 创建实体更新系统
func NewEntityUpdateSystem(em *ecs.EntityManager, cfg *config.GameConfig, pf Playfield, ps *PlayerSystem) *EntityUpdateSystem {
	return &EntityUpdateSystem{
		entityManager: em,
		config:        cfg,
		playfield:     pf,
		playerSystem:  ps,
	}
}

// Update 推进所有活跃实体一帧
func (s *EntityUpdateSystem) Update(deltaTime float64) {
	width, height := PlayfieldSize(s.playfield, s.config.World)
	margin := s.config.World.OffscreenMargin

	for _, id := range s.entityManager.Entities() {
		life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id)
		if !ok || !life.IsAlive() {
			continue
		}
		category, ok := ecs.GetComponent[*components.CategoryComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if !ok {
			continue
		}

		switch category.Category {
		case types.CategoryPlayer:
			if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id); ok {
				s.playerSystem.UpdatePlayer(pos, bounds, player, deltaTime)
				ClampToPlayfield(pos, bounds, width, height)
			}

		case types.CategoryEnemy:
			if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok {
				MoveEnemy(pos, bounds, enemy, width, deltaTime)
				KillIfOffscreen(pos, bounds, life, width, height, margin)
			}

		case types.CategoryBulletPlayer:
			if bullet, ok := ecs.GetComponent[*components.BulletComponent](s.entityManager, id); ok {
				MoveBullet(pos, bullet, deltaTime)
				KillIfOffscreen(pos, bounds, life, width, height, margin)
			}

		case types.CategoryPowerup:
			if item, ok := ecs.GetComponent[*components.ItemComponent](s.entityManager, id); ok {
				MoveItem(pos, item, deltaTime)
				KillIfOffscreen(pos, bounds, life, width, height, margin)
			}

		case types.CategoryEffect:
			if effect, ok := ecs.GetComponent[*components.ShieldEffectComponent](s.entityManager, id); ok {
				s.updateShieldEffect(pos, life, effect)
			}
		}
	}
}

// updateShieldEffect 光环跟随所有者；所有者消失、死亡或护盾到期时自毁
func (s *EntityUpdateSystem) updateShieldEffect(pos *components.PositionComponent, life *components.LifeComponent, effect *components.ShieldEffectComponent) {
	ownerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, effect.Owner)
	if !ok {
		life.Kill()
		return
	}
	pos.X = ownerPos.X - effect.OffsetX
	pos.Y = ownerPos.Y - effect.OffsetY

	ownerLife, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, effect.Owner)
	if !ok || !ownerLife.IsAlive() {
		life.Kill()
		return
	}
	owner, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, effect.Owner)
	if !ok || !owner.IsShielded() {
		life.Kill()
	}
}
