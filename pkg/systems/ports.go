package systems

import (
	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . IntentSource,RenderSink,SoundSink,Playfield,Random

// IntentSource 每帧提供一次操作意图快照
type IntentSource interface {
	Intents() types.ControlIntents
}

// RenderSink 渲染接收端
// 实体在加入世界时 Attach，每帧存活时 Move，清理时 Detach
type RenderSink interface {
	Attach(id ecs.EntityID, sprite components.SpriteComponent)
	Move(id ecs.EntityID, x, y float64)
	Detach(id ecs.EntityID)
}

// SoundSink 音效触发接收端（只触发，不关心播放结果）
type SoundSink interface {
	Play(event types.SoundEvent)
}

// Playfield 场地尺寸查询
type Playfield interface {
	Size() (width, height float64)
}

// Random 随机数源，*math/rand.Rand 满足该接口
type Random interface {
	Float64() float64
	Intn(n int) int
}

// PlayfieldSize 查询场地尺寸
// 场地为空、宽度小于 MinValidWidth 或高度非正（布局尚未就绪）时使用配置中的回退尺寸
func PlayfieldSize(pf Playfield, world config.WorldConfig) (width, height float64) {
	if pf == nil {
		return world.Width, world.Height
	}
	width, height = pf.Size()
	if width < world.MinValidWidth || height <= 0 {
		return world.Width, world.Height
	}
	return width, height
}

// FixedPlayfield 固定尺寸的场地
type FixedPlayfield struct {
	Width, Height float64
}

// Size 实现 Playfield 接口
func (f FixedPlayfield) Size() (float64, float64) {
	return f.Width, f.Height
}
