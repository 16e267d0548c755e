package systems

import (
	"math"
	"testing"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/session"
	"github.com/decker502/airbattle/pkg/systems/mocks"
	"github.com/decker502/airbattle/pkg/types"
	"go.uber.org/mock/gomock"
)

func newTestSpawnSystem(em *ecs.EntityManager, gs *session.GameState, pf Playfield, rng Random) *EnemySpawnSystem {
	cfg := newTestConfig()
	return NewEnemySpawnSystem(em, cfg, gs, NewDifficultyEngine(cfg), pf, rng)
}

func TestEnemySpawnFirstFrameSpawnsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandom(ctrl)
	gomock.InOrder(
		rng.EXPECT().Float64().Return(0.5), // 抖动
		rng.EXPECT().Float64().Return(0.5), // X坐标
		rng.EXPECT().Intn(100).Return(99),  // 类型
	)

	em := ecs.NewEntityManager()
	s := newTestSpawnSystem(em, session.NewGameState(), FixedPlayfield{Width: 900, Height: 600}, rng)
	s.Update(1.0 / 60)

	if em.PendingCount() != 1 {
		t.Fatalf("expected one pending enemy, got %d", em.PendingCount())
	}
	if math.Abs(s.Timer()-0.95) > epsilon {
		t.Errorf("expected timer 0.8 + 0.5*0.3 = 0.95, got %v", s.Timer())
	}

	id := em.FlushPending()[0]
	enemy := mustGet[*components.EnemyComponent](t, em, id)
	if enemy.Type != types.EnemyNormal {
		t.Errorf("roll 99 should spawn normal enemy, got %v", enemy.Type)
	}
	pos := mustGet[*components.PositionComponent](t, em, id)
	if math.Abs(pos.X-450) > epsilon || pos.Y != -60 {
		t.Errorf("expected spawn at (450,-60), got (%v,%v)", pos.X, pos.Y)
	}
}

func TestEnemySpawnWaitsForTimer(t *testing.T) {
	em := ecs.NewEntityManager()
	rng := &scriptedRandom{}
	s := newTestSpawnSystem(em, session.NewGameState(), nil, rng)

	s.Update(0.016) // 立即生成，计时器重置为 0.8
	s.Update(0.5)
	if em.PendingCount() != 1 {
		t.Fatalf("timer not expired, expected 1 spawn, got %d", em.PendingCount())
	}

	s.Update(0.31)
	if em.PendingCount() != 2 {
		t.Errorf("timer expired, expected 2 spawns, got %d", em.PendingCount())
	}
}

func TestEnemySpawnScalesWithDifficulty(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandom(ctrl)
	gomock.InOrder(
		rng.EXPECT().Float64().Return(0.0),
		rng.EXPECT().Float64().Return(0.0),
		rng.EXPECT().Intn(100).Return(34), // 25 级: boss < 35
	)

	gs := session.NewGameState()
	gs.AddScore(12500)

	em := ecs.NewEntityManager()
	s := newTestSpawnSystem(em, gs, nil, rng)
	s.Update(0.016)

	if math.Abs(s.Timer()-0.2) > epsilon {
		t.Errorf("expected capped interval 0.2, got %v", s.Timer())
	}

	id := em.FlushPending()[0]
	enemy := mustGet[*components.EnemyComponent](t, em, id)
	if enemy.Type != types.EnemyBoss {
		t.Fatalf("expected boss, got %v", enemy.Type)
	}
	if enemy.HP != 35 {
		t.Errorf("expected boss HP 10*3.5 = 35, got %d", enemy.HP)
	}
	if math.Abs(enemy.Speed-120*3.5) > epsilon {
		t.Errorf("expected boss speed 420, got %v", enemy.Speed)
	}
	pos := mustGet[*components.PositionComponent](t, em, id)
	if pos.X != 20 {
		t.Errorf("u=0 should spawn at marginX 20, got %v", pos.X)
	}
}

func TestEnemySpawnUsesFallbackWidth(t *testing.T) {
	ctrl := gomock.NewController(t)
	pf := mocks.NewMockPlayfield(ctrl)
	pf.EXPECT().Size().Return(50.0, 600.0)

	rng := &scriptedRandom{floats: []float64{0, 1}}
	em := ecs.NewEntityManager()
	s := newTestSpawnSystem(em, session.NewGameState(), pf, rng)
	s.Update(0.016)

	id := em.FlushPending()[0]
	pos := mustGet[*components.PositionComponent](t, em, id)
	if pos.X != 880 {
		t.Errorf("layout not ready, expected x = 20 + 1*(900-40) = 880, got %v", pos.X)
	}
}

func TestEnemySpawnDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	s := newTestSpawnSystem(em, session.NewGameState(), nil, &scriptedRandom{})
	s.Disable()
	s.Update(1)

	if em.PendingCount() != 0 {
		t.Errorf("disabled system should not spawn, got %d", em.PendingCount())
	}

	s.Enable()
	s.Update(0.016)
	if em.PendingCount() != 1 {
		t.Errorf("enabled system should spawn, got %d", em.PendingCount())
	}
}
