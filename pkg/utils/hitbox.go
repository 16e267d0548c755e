// Package utils 提供通用工具函数
package utils

// Rect 轴对齐矩形（世界坐标，左上角为原点）
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// HitboxOf 计算实体的碰撞矩形
// x, y 为渲染框左上角；insetX/insetY 为每条边向内收缩的距离
func HitboxOf(x, y, width, height, insetX, insetY float64) Rect {
	return Rect{
		Left:   x + insetX,
		Top:    y + insetY,
		Right:  x + width - insetX,
		Bottom: y + height - insetY,
	}
}

// Intersects 检查两个矩形是否重叠（AABB）
// 使用严格不等式：边缘恰好接触不算碰撞。结果与参数顺序无关。
func Intersects(a, b Rect) bool {
	return a.Right > b.Left &&
		a.Left < b.Right &&
		a.Bottom > b.Top &&
		a.Top < b.Bottom
}
