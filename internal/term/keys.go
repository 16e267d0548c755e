package term

import (
	"github.com/gdamore/tcell/v2"
)

// Action 一次按键对应的动作
type Action int

const (
	ActionNone Action = iota
	ActionControl
	ActionPause
	ActionRestart
	ActionMute
	ActionQuit
)

// KeyBinding 按键解析结果
type KeyBinding struct {
	Action  Action
	Control Control // 仅 Action == ActionControl 时有效
}

// runeControls 字母键绑定（大小写等价）
var runeControls = map[rune]Control{
	'w': ControlUp,
	'k': ControlUp,
	's': ControlDown,
	'j': ControlDown,
	'a': ControlLeft,
	'h': ControlLeft,
	'd': ControlRight,
	'l': ControlRight,
	' ': ControlFire,
	'f': ControlFire,
}

var keyControls = map[tcell.Key]Control{
	tcell.KeyUp:    ControlUp,
	tcell.KeyDown:  ControlDown,
	tcell.KeyLeft:  ControlLeft,
	tcell.KeyRight: ControlRight,
}

// TranslateKey 把 tcell 按键事件解析为动作
//
// 方向键/WASD/hjkl 移动，空格或 f 射击，p 或 Esc 暂停，
// Enter 或 r 重开，m 静音，q 或 Ctrl-C 退出
func TranslateKey(ev *tcell.EventKey) KeyBinding {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return KeyBinding{Action: ActionQuit}
	case tcell.KeyEscape:
		return KeyBinding{Action: ActionPause}
	case tcell.KeyEnter:
		return KeyBinding{Action: ActionRestart}
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if c, ok := runeControls[r]; ok {
			return KeyBinding{Action: ActionControl, Control: c}
		}
		switch r {
		case 'p':
			return KeyBinding{Action: ActionPause}
		case 'r':
			return KeyBinding{Action: ActionRestart}
		case 'm':
			return KeyBinding{Action: ActionMute}
		case 'q':
			return KeyBinding{Action: ActionQuit}
		}
	default:
		if c, ok := keyControls[ev.Key()]; ok {
			return KeyBinding{Action: ActionControl, Control: c}
		}
	}
	return KeyBinding{Action: ActionNone}
}
