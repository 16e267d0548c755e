package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/airbattle/pkg/types"
)

// keyboard 键盘状态查询（测试中可替换）
type keyboard interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeyboard 直接读取 ebiten 的键盘状态
type ebitenKeyboard struct{}

func (ebitenKeyboard) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeyboard) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// 键位绑定：方向键与 WASD 等价，空格或 J 射击
var (
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ}
)

// keyboardIntents 实现 systems.IntentSource
type keyboardIntents struct {
	keys keyboard
}

// Intents 返回本帧的操作意图快照
func (k keyboardIntents) Intents() types.ControlIntents {
	return types.ControlIntents{
		Up:    anyPressed(k.keys, upKeys),
		Down:  anyPressed(k.keys, downKeys),
		Left:  anyPressed(k.keys, leftKeys),
		Right: anyPressed(k.keys, rightKeys),
		Fire:  anyPressed(k.keys, fireKeys),
	}
}

func anyPressed(kb keyboard, keys []ebiten.Key) bool {
	for _, key := range keys {
		if kb.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
