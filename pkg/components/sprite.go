package components

// SpriteComponent 交给渲染端的不透明可绘制句柄
// 核心逻辑只关心贴图ID和尺寸，具体贴图（或占位图形）由渲染端决定
type SpriteComponent struct {
	SpriteID string
	Width    float64
	Height   float64
}
