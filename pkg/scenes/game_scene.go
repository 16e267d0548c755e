package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/game"
	"github.com/decker502/airbattle/pkg/session"
	"github.com/decker502/airbattle/pkg/systems"
	"github.com/decker502/airbattle/pkg/world"
)

var backgroundColor = color.RGBA{R: 12, G: 16, B: 40, A: 255}

// GameScene 对局场景
//
// 负责把 ebiten 的输入、绘制和音效接到游戏世界上：
//   - Esc 暂停/继续，M 静音开关
//   - 对局结束后 Enter 开始新的一局
type GameScene struct {
	config          *config.GameConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	gameState       *session.GameState
	gameLoop        *session.GameLoop
	world           *world.World

	keys      keyboard
	renderer  *spriteRenderer
	playfield *screenPlayfield
}

// screenPlayfield 以最近一次绘制的画面尺寸作为场地尺寸
// 第一次绘制之前尺寸为 0，世界会退回到配置中的默认尺寸
type screenPlayfield struct {
	width, height float64
}

func (p *screenPlayfield) Size() (float64, float64) {
	return p.width, p.height
}

// NewGameScene 创建一局新的对局
//
// 参数:
//   - cfg: 游戏配置
//   - sm: 场景管理器（对局结束后用于重开）
//   - sound: 音效输出
//   - settings: 设置管理器（静音开关），可为 nil
func NewGameScene(cfg *config.GameConfig, sm *game.SceneManager, sound systems.SoundSink, settings *game.SettingsManager) (*GameScene, error) {
	return newGameScene(cfg, sm, sound, settings, ebitenKeyboard{}, nil)
}

// newGameScene 允许注入键盘和随机源（测试用）
func newGameScene(cfg *config.GameConfig, sm *game.SceneManager, sound systems.SoundSink, settings *game.SettingsManager, keys keyboard, rng systems.Random) (*GameScene, error) {
	gameState := session.NewGameState()
	s := &GameScene{
		config:          cfg,
		sceneManager:    sm,
		settingsManager: settings,
		gameState:       gameState,
		gameLoop:        session.NewGameLoop(gameState, cfg.World.MaxDeltaTime),
		keys:            keys,
		renderer:        newSpriteRenderer(),
		playfield:       &screenPlayfield{},
	}

	w, err := world.New(cfg, gameState, world.Dependencies{
		Intents:   keyboardIntents{keys: keys},
		Render:    s.renderer,
		Sound:     sound,
		Playfield: s.playfield,
		Random:    rng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}
	s.world = w

	log.Printf("[GameScene] 新对局 %s", gameState.SessionID())
	return s, nil
}

// Update 处理按键并推进世界
func (s *GameScene) Update(deltaTime float64) {
	if s.keys.IsKeyJustPressed(ebiten.KeyM) {
		s.toggleMute()
	}

	if s.gameState.IsGameOver() {
		if s.keys.IsKeyJustPressed(ebiten.KeyEnter) && s.sceneManager != nil {
			s.sceneManager.Restart()
		}
		return
	}

	if s.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		s.gameLoop.TogglePause()
		log.Printf("[GameScene] 暂停状态: %v", s.gameLoop.IsPaused())
	}

	dt, ok := s.gameLoop.Advance(deltaTime)
	if !ok {
		return
	}
	s.world.Update(dt)
}

// Draw 绘制背景、实体、HUD 与覆盖层
func (s *GameScene) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	s.playfield.width = float64(bounds.Dx())
	s.playfield.height = float64(bounds.Dy())

	screen.Fill(backgroundColor)
	s.renderer.Draw(screen)
	s.drawHUD(screen)

	switch s.gameState.Phase() {
	case session.PhasePaused:
		s.drawOverlay(screen, pausedLines())
	case session.PhaseGameOver:
		s.drawOverlay(screen, gameOverLines(s.world.Score()))
	}
}

func (s *GameScene) toggleMute() {
	if s.settingsManager == nil {
		return
	}
	enabled := !s.settingsManager.GetSettings().SoundEnabled
	s.settingsManager.SetSoundEnabled(enabled)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
}

// World 返回当前对局的世界（调试用）
func (s *GameScene) World() *world.World {
	return s.world
}
