package components

// BulletComponent 玩家子弹数据
// 子弹是单次命中的：第一次命中敌机即销毁
type BulletComponent struct {
	Damage int
	SpeedX float64 // 横向速度（散弹 ±100，直射 0）
	SpeedY float64 // 向上速度（像素/秒）
}
