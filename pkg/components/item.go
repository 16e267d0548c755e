package components

import "github.com/decker502/airbattle/pkg/types"

// ItemComponent 道具数据
type ItemComponent struct {
	Type      types.ItemType
	FallSpeed float64 // 下落速度（像素/秒）
}
