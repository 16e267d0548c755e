package systems

import (
	"log"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/entities"
	"github.com/decker502/airbattle/pkg/types"
)

// PlayerSystem 玩家控制器
// 每帧依次：推进增益计时 → 按操作意图移动 → 按开火意图射击
// 子弹通过实体工厂进入待加入队列，下一帧才参与更新和碰撞
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	intents       IntentSource
	sound         SoundSink
}

// NewPlayerSystem 创建玩家控制器
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置（子弹属性、炮口偏移）
//   - intents: 操作意图来源
//   - sound: 音效接收端（射击音效）
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameConfig, intents IntentSource, sound SoundSink) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		config:        cfg,
		intents:       intents,
		sound:         sound,
	}
}

// UpdatePlayer 推进玩家一帧（不含场地限制，由调用方在之后执行）
func (s *PlayerSystem) UpdatePlayer(pos *components.PositionComponent, bounds *components.BoundsComponent, player *components.PlayerComponent, dt float64) {
	player.TickBuffs(dt)

	intents := s.intents.Intents()
	MovePlayer(pos, intents.Up, intents.Down, intents.Left, intents.Right, player.MoveSpeed, dt)

	if intents.Fire && player.CanFire() {
		s.Fire(pos, bounds, player)
	}
}

// DamagePlayer 对玩家造成一点撞击伤害，生命值归零时同时把实体标记为死亡
// 护盾生效或玩家已死亡时无效
//
// 返回:
//   - 本次伤害是否导致玩家死亡（每个玩家只会返回一次 true）
func DamagePlayer(em *ecs.EntityManager, playerID ecs.EntityID) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if !ok || !player.Damage() {
		return false
	}
	if life, ok := ecs.GetComponent[*components.LifeComponent](em, playerID); ok {
		life.Kill()
	}
	return true
}

// Fire 射击一次并重置冷却
// 总是发射一颗居中直射子弹；散射生效时额外发射左右两颗斜向子弹
func (s *PlayerSystem) Fire(pos *components.PositionComponent, bounds *components.BoundsComponent, player *components.PlayerComponent) {
	player.FireCooldownTimer = player.EffectiveFireCooldown()
	s.sound.Play(types.SoundShoot)

	super := player.UsesSuperBullets()
	centerX := pos.X + bounds.Width/2
	y := pos.Y - s.config.Player.MuzzleOffsetY

	speeds := []float64{0}
	if player.IsShotgun() {
		spread := s.config.Bullets.SpreadSpeedX
		speeds = append(speeds, -spread, spread)
	}

	for _, speedX := range speeds {
		if _, err := entities.NewBullet(s.entityManager, s.config, centerX, y, super, speedX); err != nil {
			log.Printf("[PlayerSystem] ERROR: failed to spawn bullet: %v", err)
		}
	}
}
