package types

// ItemType 定义道具的效果类型
type ItemType int

const (
	// ItemHeal 回血 +1
	ItemHeal ItemType = iota
	// ItemRampage 狂暴：限时自动连射
	ItemRampage
	// ItemSuperBullet 超级子弹：限时高伤害子弹
	ItemSuperBullet
	// ItemShotgun 散弹：限时三向射击
	ItemShotgun
	// ItemShield 护盾：限时免疫撞击伤害 + 加速
	ItemShield
)

// ItemTypes 按掉落权重区间的固定顺序列出全部道具
var ItemTypes = []ItemType{ItemHeal, ItemRampage, ItemSuperBullet, ItemShotgun, ItemShield}

// String 返回道具类型的字符串表示
func (i ItemType) String() string {
	switch i {
	case ItemHeal:
		return "heal"
	case ItemRampage:
		return "rampage"
	case ItemSuperBullet:
		return "super_bullet"
	case ItemShotgun:
		return "shotgun"
	case ItemShield:
		return "shield"
	default:
		return "unknown"
	}
}

// SpriteID 返回道具对应的贴图ID
func (i ItemType) SpriteID() string {
	return "item_" + i.String()
}
