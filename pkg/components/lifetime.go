package components

// LifeComponent 实体的存活状态
// 存活 -> 死亡 是单向转换：死亡实体不再更新、不再参与碰撞，并在本帧清理阶段被移除
type LifeComponent struct {
	alive bool
}

// NewLifeComponent 创建一个存活状态的 LifeComponent
func NewLifeComponent() *LifeComponent {
	return &LifeComponent{alive: true}
}

// IsAlive 返回实体是否存活
func (l *LifeComponent) IsAlive() bool {
	return l != nil && l.alive
}

// Kill 将实体标记为死亡，重复调用无副作用
func (l *LifeComponent) Kill() {
	l.alive = false
}
