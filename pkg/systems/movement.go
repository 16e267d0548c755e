package systems

import (
	"math"

	"github.com/decker502/airbattle/pkg/components"
)

// 各类实体的移动规则（纯函数，只修改传入的组件）

// MoveEnemy 按敌机类型推进一帧
//   - 普通: 下降，同时按 sin(y·freq)·amp 左右摆动
//   - 快速/大型: 下降，同时在场地左右边缘之间往返巡逻；
//     触边后方向总是指向场地内侧，出生时越过右边缘的敌机也会折回
func MoveEnemy(pos *components.PositionComponent, bounds *components.BoundsComponent, enemy *components.EnemyComponent, playfieldWidth, dt float64) {
	pos.Y += enemy.Speed * dt

	if !enemy.Type.Patrols() {
		pos.X += math.Sin(pos.Y*enemy.SwayFrequency) * enemy.SwayAmplitude * dt
		return
	}

	pos.X += enemy.DirX * enemy.PatrolSpeed * dt
	switch {
	case pos.X+bounds.Width >= playfieldWidth:
		enemy.DirX = -1
	case pos.X <= 0:
		enemy.DirX = 1
	}
}

// MoveBullet 子弹向上飞行，散弹附带横向速度
func MoveBullet(pos *components.PositionComponent, bullet *components.BulletComponent, dt float64) {
	pos.Y -= bullet.SpeedY * dt
	pos.X += bullet.SpeedX * dt
}

// MoveItem 道具匀速下落
func MoveItem(pos *components.PositionComponent, item *components.ItemComponent, dt float64) {
	pos.Y += item.FallSpeed * dt
}

// MovePlayer 按操作意图移动玩家，四个方向互相独立
func MovePlayer(pos *components.PositionComponent, up, down, left, right bool, speed, dt float64) {
	step := speed * dt
	if up {
		pos.Y -= step
	}
	if down {
		pos.Y += step
	}
	if left {
		pos.X -= step
	}
	if right {
		pos.X += step
	}
}

// ClampToPlayfield 把实体的完整包围盒限制在 [0,width]×[0,height] 内
func ClampToPlayfield(pos *components.PositionComponent, bounds *components.BoundsComponent, width, height float64) {
	pos.X = math.Max(0, math.Min(pos.X, width-bounds.Width))
	pos.Y = math.Max(0, math.Min(pos.Y, height-bounds.Height))
}

// IsOffscreen 包围盒是否已完全离开 [-margin, width+margin]×[-margin, height+margin]
func IsOffscreen(pos *components.PositionComponent, bounds *components.BoundsComponent, width, height, margin float64) bool {
	return pos.X+bounds.Width < -margin ||
		pos.X > width+margin ||
		pos.Y+bounds.Height < -margin ||
		pos.Y > height+margin
}

// KillIfOffscreen 出界规则：子弹、敌机、道具共用，在各自移动之后调用
func KillIfOffscreen(pos *components.PositionComponent, bounds *components.BoundsComponent, life *components.LifeComponent, width, height, margin float64) {
	if IsOffscreen(pos, bounds, width, height, margin) {
		life.Kill()
	}
}
