package components

import (
	"math"

	"github.com/decker502/airbattle/pkg/types"
)

// EnemyComponent 敌机数据
type EnemyComponent struct {
	Type       types.EnemyType // 移动模式
	Speed      float64         // 下降速度（像素/秒）
	HP         int             // 当前生命值
	ScoreValue int             // 被击毁时获得的分数

	// 横向移动参数
	DirX          float64 // 巡逻方向（+1 向右，-1 向左）
	PatrolSpeed   float64 // 巡逻横向速度（像素/秒）
	SwayFrequency float64 // 正弦摆动频率（弧度/像素）
	SwayAmplitude float64 // 正弦摆动幅度（像素/秒）
}

// ApplyDifficulty 按难度倍率放大速度和生命值
// 生命值向下取整，但不会低于放大前的基础值
func (e *EnemyComponent) ApplyDifficulty(multiplier float64) {
	e.Speed *= multiplier
	e.HP = int(math.Max(float64(e.HP), float64(e.HP)*multiplier))
}

// Damage 扣除生命值，返回扣除后是否已被击毁
func (e *EnemyComponent) Damage(amount int) bool {
	e.HP -= amount
	return e.HP <= 0
}
