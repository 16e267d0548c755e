package systems

import (
	"log"

	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/entities"
	"github.com/decker502/airbattle/pkg/session"
)

// EnemySpawnSystem 管理敌机的定时生成
// 计时器倒数到 0 时生成一架敌机，并按当前难度重置计时器
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	gameState     *session.GameState
	engine        *DifficultyEngine
	playfield     Playfield
	rng           Random
	spawnTimer    float64 // 初始为 0，第一帧立即生成
	enabled       bool
}

// NewEnemySpawnSystem 创建敌机生成系统
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置
//   - gs: 对局状态（读取分数计算难度）
//   - engine: 难度引擎
//   - pf: 场地尺寸查询
//   - rng: 随机数源
func NewEnemySpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, gs *session.GameState, engine *DifficultyEngine, pf Playfield, rng Random) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		entityManager: em,
		config:        cfg,
		gameState:     gs,
		engine:        engine,
		playfield:     pf,
		rng:           rng,
		enabled:       true,
	}
}

// Update 推进生成计时器，到期时生成一架敌机
// 随机数的抽取顺序固定：间隔抖动、生成X坐标、类型掷骰
func (s *EnemySpawnSystem) Update(deltaTime float64) {
	if !s.enabled {
		return
	}

	s.spawnTimer -= deltaTime
	if s.spawnTimer > 0 {
		return
	}

	level := s.engine.Level(s.gameState.Score())
	s.spawnTimer = s.engine.SpawnInterval(level) + s.rng.Float64()*s.config.Spawn.Jitter

	width, _ := PlayfieldSize(s.playfield, s.config.World)
	margin := s.config.Spawn.MarginX
	x := margin + s.rng.Float64()*(width-2*margin)
	y := s.config.Spawn.SpawnY

	enemyType := s.engine.PickEnemyType(s.rng.Intn(100), level)
	if _, err := entities.NewEnemy(s.entityManager, s.config, enemyType, x, y, s.engine.StatMultiplier(level)); err != nil {
		log.Printf("[EnemySpawnSystem] ERROR: failed to spawn %s enemy: %v", enemyType, err)
	}
}

// Timer 返回距下一次生成的剩余时间
func (s *EnemySpawnSystem) Timer() float64 {
	return s.spawnTimer
}

// Enable 启用自动生成
func (s *EnemySpawnSystem) Enable() {
	s.enabled = true
	log.Printf("[EnemySpawnSystem] Auto spawn ENABLED")
}

// Disable 禁用自动生成（计时器保持不变）
func (s *EnemySpawnSystem) Disable() {
	s.enabled = false
	log.Printf("[EnemySpawnSystem] Auto spawn DISABLED")
}
