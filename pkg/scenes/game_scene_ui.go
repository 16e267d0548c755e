package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/airbattle/pkg/components"
)

const (
	hudX          = 10
	hudY          = 10
	hudLineHeight = 16

	// DebugPrint 的字形宽度约 6 像素
	debugGlyphWidth = 6
)

var overlayColor = color.RGBA{A: 160}

// hudLines 生成 HUD 文本
func hudLines(score, level int, player *components.PlayerComponent, sessionID string) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", score),
		fmt.Sprintf("Level: %d", level),
	}
	if player != nil {
		lines = append(lines, fmt.Sprintf("HP: %d/%d", player.HP, player.MaxHP))
		if buffs := activeBuffs(player); len(buffs) > 0 {
			lines = append(lines, "Buffs: "+strings.Join(buffs, " "))
		}
	}
	if len(sessionID) >= 8 {
		lines = append(lines, "Session: "+sessionID[:8])
	}
	return lines
}

// activeBuffs 列出生效中的增益及剩余秒数
func activeBuffs(p *components.PlayerComponent) []string {
	var buffs []string
	add := func(name string, remaining float64) {
		if remaining > 0 {
			buffs = append(buffs, fmt.Sprintf("%s(%.0fs)", name, remaining))
		}
	}
	add("shield", p.ShieldTimer)
	add("rampage", p.AutoFireTimer)
	add("super", p.SuperBulletTimer)
	add("shotgun", p.ShotgunTimer)
	add("speed", p.SpeedBoostTimer)
	add("rapid", p.FireBoostTimer)
	return buffs
}

func pausedLines() []string {
	return []string{"PAUSED", "Press Esc to resume"}
}

func gameOverLines(score int) []string {
	return []string{"GAME OVER", fmt.Sprintf("Final score: %d", score), "Press Enter to play again"}
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	player, _ := s.world.Player()
	lines := hudLines(s.world.Score(), s.world.Level(), player, s.gameState.SessionID())
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, hudX, hudY+i*hudLineHeight)
	}
}

// drawOverlay 半透明遮罩 + 居中文本
func (s *GameScene) drawOverlay(screen *ebiten.Image, lines []string) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)

	top := h/2 - len(lines)*hudLineHeight/2
	for i, line := range lines {
		x := w/2 - len(line)*debugGlyphWidth/2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*hudLineHeight)
	}
}
