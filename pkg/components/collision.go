package components

// BoundsComponent 定义实体的逻辑尺寸与碰撞盒内缩量
// 碰撞检测使用的矩形 = 渲染框在每个轴上向内收缩 Inset（用于抵消贴图留白）
type BoundsComponent struct {
	Width  float64 // 逻辑宽度（像素）
	Height float64 // 逻辑高度（像素）
	InsetX float64 // 碰撞盒水平内缩量（像素），左右各收缩该值
	InsetY float64 // 碰撞盒垂直内缩量（像素），上下各收缩该值
}
