package types

// EnemyType 定义敌机的移动模式
type EnemyType int

const (
	// EnemyNormal 普通敌机：直线下降 + 正弦横向摆动
	EnemyNormal EnemyType = iota
	// EnemyFast 快速敌机：快速下降 + 左右巡逻（碰边反弹）
	EnemyFast
	// EnemyBoss 大型敌机：与快速敌机相同的巡逻规则，体型更大、血量更高
	EnemyBoss
)

// SpriteID 常量 - 渲染端据此选择贴图（或占位图形）
const (
	SpriteIDPlayer      = "player"
	SpriteIDEnemyNormal = "enemy"
	SpriteIDEnemyFast   = "enemy_fast"
	SpriteIDEnemyBoss   = "enemy_boss"
	SpriteIDBullet      = "bullet"
	SpriteIDSuperBullet = "super_bullet"
	SpriteIDShield      = "shield"
)

// enemyTypeStringMap 敌机类型到配置字符串的映射
var enemyTypeStringMap = map[EnemyType]string{
	EnemyNormal: "normal",
	EnemyFast:   "fast",
	EnemyBoss:   "boss",
}

// enemyTypeSpriteMap 敌机类型到贴图ID的映射
var enemyTypeSpriteMap = map[EnemyType]string{
	EnemyNormal: SpriteIDEnemyNormal,
	EnemyFast:   SpriteIDEnemyFast,
	EnemyBoss:   SpriteIDEnemyBoss,
}

// String 返回敌机类型的配置字符串表示（用于配置文件匹配）
func (e EnemyType) String() string {
	if s, ok := enemyTypeStringMap[e]; ok {
		return s
	}
	return "unknown"
}

// SpriteID 返回敌机类型对应的贴图ID
func (e EnemyType) SpriteID() string {
	if id, ok := enemyTypeSpriteMap[e]; ok {
		return id
	}
	return SpriteIDEnemyNormal
}

// Patrols 返回该类型是否使用左右巡逻移动
func (e EnemyType) Patrols() bool {
	return e == EnemyFast || e == EnemyBoss
}
