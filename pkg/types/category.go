// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Category 实体的碰撞分类标签
// 分类在实体创建时确定，整个生命周期内不可更改，仅用于碰撞分区
type Category int

const (
	// CategoryPlayer 玩家战机
	CategoryPlayer Category = iota
	// CategoryEnemy 敌机
	CategoryEnemy
	// CategoryBulletPlayer 玩家子弹
	CategoryBulletPlayer
	// CategoryPowerup 可拾取道具
	CategoryPowerup
	// CategoryEffect 视觉效果（不参与碰撞）
	CategoryEffect
)

// String 返回分类的字符串表示（用于日志）
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryBulletPlayer:
		return "bullet_player"
	case CategoryPowerup:
		return "powerup"
	case CategoryEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Collides 返回该分类是否参与碰撞检测
func (c Category) Collides() bool {
	return c != CategoryEffect
}
