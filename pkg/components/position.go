package components

// PositionComponent 实体在世界坐标中的位置
// 坐标为实体渲染框的左上角（像素）
type PositionComponent struct {
	X float64
	Y float64
}
