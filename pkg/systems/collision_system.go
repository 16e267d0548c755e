package systems

import (
	"log"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/session"
	"github.com/decker502/airbattle/pkg/types"
	"github.com/decker502/airbattle/pkg/utils"
)

// collider 参与碰撞的实体快照（碰撞阶段内位置不变，碰撞盒只算一次）
type collider struct {
	id     ecs.EntityID
	hitbox utils.Rect
	life   *components.LifeComponent
}

// collisionRule 一条碰撞规则
// 对 first 分区中每个存活实体，按分区顺序检查 second 分区中每个存活且相交的实体；
// stopAfterHit 为 true 时，first 实体命中一次后不再检查后续实体
type collisionRule struct {
	first, second types.Category
	stopAfterHit  bool
	resolve       func(s *CollisionSystem, a, b ecs.EntityID)
}

// collisionRules 固定的分类对规则表，按表中顺序执行
var collisionRules = []collisionRule{
	{first: types.CategoryBulletPlayer, second: types.CategoryEnemy, stopAfterHit: true, resolve: (*CollisionSystem).resolveBulletEnemy},
	{first: types.CategoryPlayer, second: types.CategoryEnemy, resolve: (*CollisionSystem).resolvePlayerEnemy},
	{first: types.CategoryPlayer, second: types.CategoryPowerup, resolve: (*CollisionSystem).resolvePlayerPowerup},
}

// CollisionSystem 碰撞检测与规则结算
// 每帧把存活实体按分类分区一次（效果类不参与），再按规则表结算
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	gameState     *session.GameState
	sound         SoundSink
	drops         *ItemDropSystem
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置
//   - gs: 对局状态（累加分数）
//   - sound: 音效接收端（爆炸、拾取）
//   - drops: 道具掉落系统
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameConfig, gs *session.GameState, sound SoundSink, drops *ItemDropSystem) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		config:        cfg,
		gameState:     gs,
		sound:         sound,
		drops:         drops,
	}
}

// Update 结算本帧所有碰撞
func (s *CollisionSystem) Update() {
	partitions := s.partition()

	for _, rule := range collisionRules {
		for _, a := range partitions[rule.first] {
			if !a.life.IsAlive() {
				continue
			}
			for _, b := range partitions[rule.second] {
				if !b.life.IsAlive() || !utils.Intersects(a.hitbox, b.hitbox) {
					continue
				}
				rule.resolve(s, a.id, b.id)
				if rule.stopAfterHit {
					break
				}
			}
		}
	}
}

// partition 按分类把存活实体分区，保持活跃实体的加入顺序
func (s *CollisionSystem) partition() map[types.Category][]collider {
	partitions := make(map[types.Category][]collider, 4)

	candidates := ecs.GetEntitiesWith3[
		*components.CategoryComponent,
		*components.PositionComponent,
		*components.BoundsComponent,
	](s.entityManager)

	for _, id := range candidates {
		category, _ := ecs.GetComponent[*components.CategoryComponent](s.entityManager, id)
		if !category.Category.Collides() {
			continue
		}
		life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id)
		if !ok || !life.IsAlive() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

		partitions[category.Category] = append(partitions[category.Category], collider{
			id:     id,
			hitbox: utils.HitboxOf(pos.X, pos.Y, bounds.Width, bounds.Height, bounds.InsetX, bounds.InsetY),
			life:   life,
		})
	}

	return partitions
}

// resolveBulletEnemy 子弹命中敌机：敌机受伤，子弹消失；敌机被击毁时加分、爆炸并掷骰掉落
func (s *CollisionSystem) resolveBulletEnemy(bulletID, enemyID ecs.EntityID) {
	bullet, ok := ecs.GetComponent[*components.BulletComponent](s.entityManager, bulletID)
	if !ok {
		return
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
	if !ok {
		return
	}

	destroyed := enemy.Damage(bullet.Damage)
	s.kill(bulletID)
	if !destroyed {
		return
	}

	s.kill(enemyID)
	s.gameState.AddScore(enemy.ScoreValue)
	s.sound.Play(types.SoundExplosion)

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID); ok {
		s.drops.TryDrop(pos.X, pos.Y)
	}
}

// resolvePlayerEnemy 玩家与敌机相撞：玩家受一点伤害（护盾时无效），敌机总是被摧毁
func (s *CollisionSystem) resolvePlayerEnemy(playerID, enemyID ecs.EntityID) {
	if !ecs.HasComponent[*components.PlayerComponent](s.entityManager, playerID) {
		return
	}

	if DamagePlayer(s.entityManager, playerID) {
		log.Printf("[CollisionSystem] Player %d destroyed, final score %d", playerID, s.gameState.Score())
	}
	s.kill(enemyID)
	s.sound.Play(types.SoundExplosion)
}

// resolvePlayerPowerup 玩家拾取道具：应用效果、播放拾取音效、道具消失
func (s *CollisionSystem) resolvePlayerPowerup(playerID, itemID ecs.EntityID) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	item, ok := ecs.GetComponent[*components.ItemComponent](s.entityManager, itemID)
	if !ok {
		return
	}

	ApplyItem(s.entityManager, s.config, playerID, player, item.Type)
	s.sound.Play(types.SoundItemPickup)
	s.kill(itemID)
}

func (s *CollisionSystem) kill(id ecs.EntityID) {
	if life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id); ok {
		life.Kill()
	}
}
