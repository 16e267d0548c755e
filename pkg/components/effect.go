package components

import "github.com/decker502/airbattle/pkg/ecs"

// ShieldEffectComponent 护盾光环效果
// 位置锁定在 Owner 位置减去偏移量；Owner 死亡或护盾到期时自行销毁
type ShieldEffectComponent struct {
	Owner   ecs.EntityID
	OffsetX float64
	OffsetY float64
}
