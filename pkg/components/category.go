package components

import "github.com/decker502/airbattle/pkg/types"

// CategoryComponent 实体的碰撞分类标签
// 创建后不可修改，碰撞系统据此对实体分区
type CategoryComponent struct {
	Category types.Category
}
