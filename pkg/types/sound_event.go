package types

// SoundEvent 核心逻辑触发的音效事件（发出即忘）
type SoundEvent string

const (
	SoundShoot      SoundEvent = "shoot"
	SoundExplosion  SoundEvent = "explosion"
	SoundItemPickup SoundEvent = "itemPickup"
)

// ControlIntents 每帧的操作意图快照
// 由外部输入层（键盘、终端）填充，核心逻辑只读取这五个布尔值
type ControlIntents struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}
