// Package term 终端前端：tcell 绘制、按键锁存与 beep 音效
//
// 终端只上报按键按下（以及按住时的自动重复），没有松开事件。
// KeyLatch 把每次按下视为"按住一小段时间"，从而把离散的按键事件还原成每帧的布尔意图。
package term

import (
	"sync"
	"time"

	"github.com/decker502/airbattle/pkg/types"
)

// DefaultHoldDuration 一次按键被视为按住的时长
// 略大于常见终端的自动重复间隔，按住方向键时意图不会在重复之间断开
const DefaultHoldDuration = 250 * time.Millisecond

// Control 可锁存的操作
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlFire
	controlCount
)

// KeyLatch 按键锁存器，实现 systems.IntentSource
//
// Press 由读取按键的 goroutine 调用，Intents 由帧循环调用，二者通过互斥锁同步
type KeyLatch struct {
	mu       sync.Mutex
	deadline [controlCount]time.Time
	hold     time.Duration
	now      func() time.Time
}

// NewKeyLatch 创建按键锁存器
//
// 参数:
//   - hold: 每次按下后保持的时长，<= 0 时使用 DefaultHoldDuration
//   - now: 时钟，为 nil 时使用 time.Now
func NewKeyLatch(hold time.Duration, now func() time.Time) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	if now == nil {
		now = time.Now
	}
	return &KeyLatch{hold: hold, now: now}
}

// Press 记录一次按下，操作在 hold 时长内保持生效
// 按下某个方向会立即释放相反方向
func (l *KeyLatch) Press(c Control) {
	if c < 0 || c >= controlCount {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.deadline[c] = now.Add(l.hold)
	if opposite, ok := opposites[c]; ok {
		l.deadline[opposite] = time.Time{}
	}
}

var opposites = map[Control]Control{
	ControlUp:    ControlDown,
	ControlDown:  ControlUp,
	ControlLeft:  ControlRight,
	ControlRight: ControlLeft,
}

// Release 立即释放所有操作（暂停、重开时使用）
func (l *KeyLatch) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deadline = [controlCount]time.Time{}
}

// Intents 返回当前时刻的操作意图快照
func (l *KeyLatch) Intents() types.ControlIntents {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	active := func(c Control) bool { return now.Before(l.deadline[c]) }
	return types.ControlIntents{
		Up:    active(ControlUp),
		Down:  active(ControlDown),
		Left:  active(ControlLeft),
		Right: active(ControlRight),
		Fire:  active(ControlFire),
	}
}
