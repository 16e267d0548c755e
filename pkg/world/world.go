// Package world 实现游戏世界：持有全部实体，并按固定顺序推进每一帧
package world

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/entities"
	"github.com/decker502/airbattle/pkg/session"
	"github.com/decker502/airbattle/pkg/systems"
	"github.com/decker502/airbattle/pkg/types"
)

// Dependencies 世界的外部协作者
// Intents 必填；其余为空时使用默认实现（空渲染、静音、配置中的场地尺寸、按时间播种的随机数）
type Dependencies struct {
	Intents   systems.IntentSource
	Render    systems.RenderSink
	Sound     systems.SoundSink
	Playfield systems.Playfield
	Random    systems.Random
}

// Factory 实体工厂，由 Spawn 调用，创建的实体在下一帧加入世界
type Factory func(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error)

// World 游戏世界
//
// 每帧流水线（顺序固定）：
//  1. 推进敌机生成计时器，可能生成一架敌机
//  2. 待加入实体进入世界，并向渲染端注册
//  3. 更新所有存活实体（玩家更新后立即限制在场地内）
//  4. 碰撞结算
//  5. 发布存活实体的位置
//  6. 清理死亡实体
//
// World 不是并发安全的，只能在一个 goroutine 中使用
type World struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	gameState     *session.GameState
	playerID      ecs.EntityID

	difficulty *systems.DifficultyEngine
	spawn      *systems.EnemySpawnSystem
	update     *systems.EntityUpdateSystem
	collision  *systems.CollisionSystem
	render     *systems.RenderSystem

	frame uint64
}

// New 创建游戏世界并放入玩家
//
// 参数:
//   - cfg: 游戏配置
//   - gs: 对局状态（分数、阶段）
//   - deps: 外部协作者
//
// 返回:
//   - *World: 世界实例
//   - error: 参数缺失或玩家创建失败时返回错误
func New(cfg *config.GameConfig, gs *session.GameState, deps Dependencies) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if gs == nil {
		return nil, fmt.Errorf("game state cannot be nil")
	}
	if deps.Intents == nil {
		return nil, fmt.Errorf("intent source cannot be nil")
	}
	if deps.Render == nil {
		deps.Render = nopRenderSink{}
	}
	if deps.Sound == nil {
		deps.Sound = nopSoundSink{}
	}
	if deps.Playfield == nil {
		deps.Playfield = systems.FixedPlayfield{Width: cfg.World.Width, Height: cfg.World.Height}
	}
	if deps.Random == nil {
		deps.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	difficulty := systems.NewDifficultyEngine(cfg)
	drops := systems.NewItemDropSystem(em, cfg, deps.Random)
	player := systems.NewPlayerSystem(em, cfg, deps.Intents, deps.Sound)

	w := &World{
		entityManager: em,
		config:        cfg,
		gameState:     gs,
		difficulty:    difficulty,
		spawn:         systems.NewEnemySpawnSystem(em, cfg, gs, difficulty, deps.Playfield, deps.Random),
		update:        systems.NewEntityUpdateSystem(em, cfg, deps.Playfield, player),
		collision:     systems.NewCollisionSystem(em, cfg, gs, deps.Sound, drops),
		render:        systems.NewRenderSystem(em, deps.Render),
	}

	playerID, err := entities.NewPlayer(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	w.playerID = playerID

	log.Printf("[World] Session %s started, playfield fallback %vx%v", gs.SessionID(), cfg.World.Width, cfg.World.Height)
	return w, nil
}

// Spawn 请求生成一个实体
// 实体立即创建但处于待加入状态，在下一次 Update 的加入阶段才进入世界
func (w *World) Spawn(factory Factory) (ecs.EntityID, error) {
	id, err := factory(w.entityManager, w.config)
	if err != nil {
		return 0, fmt.Errorf("failed to spawn entity: %w", err)
	}
	return id, nil
}

// Update 推进世界一帧
func (w *World) Update(deltaTime float64) {
	w.frame++

	w.spawn.Update(deltaTime)
	w.render.Attach(w.entityManager.FlushPending())
	w.update.Update(deltaTime)
	w.collision.Update()
	w.render.Update()
	w.render.Cleanup()

	if !w.gameState.IsGameOver() && !w.PlayerAlive() {
		w.gameState.SetPhase(session.PhaseGameOver)
		log.Printf("[World] Game over at frame %d, score %d", w.frame, w.gameState.Score())
	}
}

// Score 返回当前分数
func (w *World) Score() int {
	return w.gameState.Score()
}

// Level 返回当前难度等级
func (w *World) Level() int {
	return w.difficulty.Level(w.gameState.Score())
}

// PlayerID 返回玩家实体ID
func (w *World) PlayerID() ecs.EntityID {
	return w.playerID
}

// Player 返回玩家组件（玩家已被移除时返回 false）
func (w *World) Player() (*components.PlayerComponent, bool) {
	return ecs.GetComponent[*components.PlayerComponent](w.entityManager, w.playerID)
}

// PlayerAlive 玩家是否仍存活
func (w *World) PlayerAlive() bool {
	life, ok := ecs.GetComponent[*components.LifeComponent](w.entityManager, w.playerID)
	return ok && life.IsAlive()
}

// EntityManager 返回世界的实体管理器（供测试和调试显示查询）
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// EnemySpawning 启用或禁用自动生成敌机
func (w *World) EnemySpawning(enabled bool) {
	if enabled {
		w.spawn.Enable()
	} else {
		w.spawn.Disable()
	}
}

// Counts 按分类统计存活实体数量（调试显示用）
func (w *World) Counts() map[types.Category]int {
	counts := make(map[types.Category]int, 5)
	for _, id := range ecs.GetEntitiesWith1[*components.CategoryComponent](w.entityManager) {
		category, _ := ecs.GetComponent[*components.CategoryComponent](w.entityManager, id)
		counts[category.Category]++
	}
	return counts
}

// Frame 返回已推进的帧数
func (w *World) Frame() uint64 {
	return w.frame
}

type nopRenderSink struct{}

func (nopRenderSink) Attach(ecs.EntityID, components.SpriteComponent) {}
func (nopRenderSink) Move(ecs.EntityID, float64, float64)             {}
func (nopRenderSink) Detach(ecs.EntityID)                             {}

type nopSoundSink struct{}

func (nopSoundSink) Play(types.SoundEvent) {}
