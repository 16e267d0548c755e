package systems

import (
	"log"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/entities"
	"github.com/decker502/airbattle/pkg/types"
)

// ApplyItem 把道具效果作用到玩家
//
//   - Heal: 回复 HealAmount 点生命（封顶）
//   - Rampage: 狂暴 BuffDuration 秒
//   - SuperBullet: 超级子弹 BuffDuration 秒
//   - Shotgun: 三向散射 BuffDuration 秒
//   - Shield: 护盾 + 移速加成，各 BuffDuration 秒；
//     玩家此前没有护盾时生成一个跟随光环，已有护盾时只重置计时
//
// 参数:
//   - em: EntityManager 实例（用于生成护盾光环）
//   - cfg: 游戏配置
//   - playerID: 玩家实体ID
//   - player: 玩家组件
//   - itemType: 道具类型
func ApplyItem(em *ecs.EntityManager, cfg *config.GameConfig, playerID ecs.EntityID, player *components.PlayerComponent, itemType types.ItemType) {
	duration := cfg.Items.BuffDuration

	switch itemType {
	case types.ItemHeal:
		player.Heal(cfg.Items.HealAmount)
	case types.ItemRampage:
		player.ActivateAutoFire(duration)
	case types.ItemSuperBullet:
		player.ActivateSuperBullet(duration)
	case types.ItemShotgun:
		player.ActivateShotgun(duration)
	case types.ItemShield:
		wasShielded := player.IsShielded()
		player.ActivateShield(duration)
		player.BoostSpeed(cfg.Items.ShieldSpeedBonus, duration)
		if !wasShielded {
			if _, err := entities.NewShieldEffect(em, cfg, playerID); err != nil {
				log.Printf("[ItemEffect] WARNING: failed to spawn shield halo: %v", err)
			}
		}
	default:
		log.Printf("[ItemEffect] WARNING: unknown item type %d", itemType)
	}
}
