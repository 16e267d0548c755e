package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/session"
	"github.com/decker502/airbattle/pkg/systems"
	"github.com/decker502/airbattle/pkg/world"
)

// FrameInterval 帧循环间隔
const FrameInterval = time.Second / 60

// errQuit 玩家主动退出
var errQuit = errors.New("quit requested")

// Runner 终端前端驱动器
//
// 两个 goroutine：
//   - 按键读取：阻塞在 PollEvent，移动/射击写入 KeyLatch，其余动作投递到 actions
//   - 帧循环：按固定间隔推进世界并绘制，世界只在这个 goroutine 中访问
type Runner struct {
	screen   tcell.Screen
	config   *config.GameConfig
	latch    *KeyLatch
	renderer *Renderer
	sound    *Speaker
	random   systems.Random
	actions  chan Action

	gameState *session.GameState
	gameLoop  *session.GameLoop
	world     *world.World
}

// NewRunner 创建终端驱动器并开始第一局
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - cfg: 游戏配置
//   - sound: 音效输出，可为 nil
func NewRunner(screen tcell.Screen, cfg *config.GameConfig, sound *Speaker) (*Runner, error) {
	return newRunner(screen, cfg, sound, NewKeyLatch(0, nil), nil)
}

func newRunner(screen tcell.Screen, cfg *config.GameConfig, sound *Speaker, latch *KeyLatch, rng systems.Random) (*Runner, error) {
	r := &Runner{
		screen:   screen,
		config:   cfg,
		latch:    latch,
		renderer: NewRenderer(cfg.World.Width, cfg.World.Height),
		sound:    sound,
		random:   rng,
		actions:  make(chan Action, 16),
	}
	if err := r.restart(); err != nil {
		return nil, err
	}
	return r, nil
}

// restart 丢弃当前世界并开始新的一局
func (r *Runner) restart() error {
	r.latch.Release()
	r.renderer.Reset()

	deps := world.Dependencies{
		Intents:   r.latch,
		Render:    r.renderer,
		Playfield: systems.FixedPlayfield{Width: r.config.World.Width, Height: r.config.World.Height},
		Random:    r.random,
	}
	if r.sound != nil {
		deps.Sound = r.sound
	}

	gameState := session.NewGameState()
	w, err := world.New(r.config, gameState, deps)
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}
	r.gameState = gameState
	r.gameLoop = session.NewGameLoop(gameState, r.config.World.MaxDeltaTime)
	r.world = w
	return nil
}

// Run 运行直到玩家退出或 ctx 被取消
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.readEvents(ctx)
	})
	g.Go(func() error {
		err := r.frameLoop(ctx)
		// 唤醒阻塞在 PollEvent 的读取 goroutine
		_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (r *Runner) readEvents(ctx context.Context) error {
	for {
		ev := r.screen.PollEvent()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if ev == nil {
			// 屏幕已关闭
			return errQuit
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if r.HandleKey(ev) == ActionQuit {
				return errQuit
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// HandleKey 处理一次按键，可从任意 goroutine 调用
// 移动和射击直接写入锁存器，其余动作交给帧循环
func (r *Runner) HandleKey(ev *tcell.EventKey) Action {
	binding := TranslateKey(ev)
	switch binding.Action {
	case ActionNone, ActionQuit:
	case ActionControl:
		r.latch.Press(binding.Control)
	default:
		select {
		case r.actions <- binding.Action:
		default:
			// 帧循环来不及处理时丢弃多余的按键
		}
	}
	return binding.Action
}

func (r *Runner) frameLoop(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := r.Step(now.Sub(last).Seconds()); err != nil {
				return err
			}
			last = now
		}
	}
}

// Step 处理待执行的动作，推进一帧并重绘
func (r *Runner) Step(rawDelta float64) error {
	for pending := true; pending; {
		select {
		case action := <-r.actions:
			if err := r.apply(action); err != nil {
				return err
			}
		default:
			pending = false
		}
	}

	if dt, ok := r.gameLoop.Advance(rawDelta); ok {
		r.world.Update(dt)
	}
	r.draw()
	return nil
}

func (r *Runner) apply(action Action) error {
	switch action {
	case ActionPause:
		if !r.gameState.IsGameOver() {
			r.gameLoop.TogglePause()
			r.latch.Release()
		}
	case ActionRestart:
		if r.gameState.IsGameOver() {
			log.Printf("[Runner] Restarting after session %s", r.gameState.SessionID())
			return r.restart()
		}
	case ActionMute:
		if r.sound != nil {
			r.sound.SetMuted(!r.sound.Muted())
		}
	}
	return nil
}

func (r *Runner) draw() {
	var overlay []string
	switch r.gameState.Phase() {
	case session.PhasePaused:
		overlay = []string{"PAUSED", "press p to resume"}
	case session.PhaseGameOver:
		overlay = []string{"GAME OVER", fmt.Sprintf("final score %d", r.world.Score()), "enter: play again   q: quit"}
	}
	r.renderer.Draw(r.screen, r.statusLine(), overlay)
}

// statusLine 状态栏文本
func (r *Runner) statusLine() string {
	parts := []string{
		fmt.Sprintf("SCORE %d", r.world.Score()),
		fmt.Sprintf("LV %d", r.world.Level()),
	}
	if player, ok := r.world.Player(); ok {
		parts = append(parts, fmt.Sprintf("HP %d/%d", player.HP, player.MaxHP))
		if player.IsShielded() {
			parts = append(parts, fmt.Sprintf("shield %.0fs", player.ShieldTimer))
		}
		if player.IsAutoFire() {
			parts = append(parts, fmt.Sprintf("rampage %.0fs", player.AutoFireTimer))
		}
		if player.IsSuperBullet() {
			parts = append(parts, fmt.Sprintf("super %.0fs", player.SuperBulletTimer))
		}
		if player.IsShotgun() {
			parts = append(parts, fmt.Sprintf("shotgun %.0fs", player.ShotgunTimer))
		}
	}
	if r.sound != nil && r.sound.Muted() {
		parts = append(parts, "muted")
	}
	return " " + strings.Join(parts, " | ")
}
