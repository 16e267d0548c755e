package systems

import (
	"math"
	"testing"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/types"
)

const epsilon = 1e-9

func TestMoveEnemyNormalSway(t *testing.T) {
	pos := &components.PositionComponent{X: 100, Y: 0}
	bounds := &components.BoundsComponent{Width: 40, Height: 40}
	enemy := &components.EnemyComponent{Type: types.EnemyNormal, Speed: 200, DirX: 1, SwayFrequency: 0.05, SwayAmplitude: 50}

	MoveEnemy(pos, bounds, enemy, 900, 0.1)

	if math.Abs(pos.Y-20) > epsilon {
		t.Errorf("expected y 20, got %v", pos.Y)
	}
	wantX := 100 + math.Sin(20*0.05)*50*0.1
	if math.Abs(pos.X-wantX) > epsilon {
		t.Errorf("expected x %v, got %v", wantX, pos.X)
	}
}

func TestMoveEnemyPatrolIsLinearBeforeFlip(t *testing.T) {
	for _, enemyType := range []types.EnemyType{types.EnemyFast, types.EnemyBoss} {
		t.Run(enemyType.String(), func(t *testing.T) {
			bounds := &components.BoundsComponent{Width: 40, Height: 40}
			once := &components.PositionComponent{X: 300, Y: 100}
			twice := &components.PositionComponent{X: 300, Y: 100}
			e1 := &components.EnemyComponent{Type: enemyType, Speed: 240, DirX: 1, PatrolSpeed: 260}
			e2 := &components.EnemyComponent{Type: enemyType, Speed: 240, DirX: 1, PatrolSpeed: 260}

			MoveEnemy(once, bounds, e1, 900, 0.2)
			MoveEnemy(twice, bounds, e2, 900, 0.1)
			MoveEnemy(twice, bounds, e2, 900, 0.1)

			if math.Abs(once.X-twice.X) > epsilon || math.Abs(once.Y-twice.Y) > epsilon {
				t.Errorf("one 0.2s step (%v,%v) should equal two 0.1s steps (%v,%v)", once.X, once.Y, twice.X, twice.Y)
			}
			if math.Abs(once.X-352) > epsilon || math.Abs(once.Y-148) > epsilon {
				t.Errorf("expected (352,148), got (%v,%v)", once.X, once.Y)
			}
		})
	}
}

func TestMoveEnemyPatrolFlipsAtEdges(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		width   float64
		dir     float64
		wantDir float64
	}{
		{"touches right edge", 855, 40, 1, -1},
		{"touches left edge", 2, 40, -1, 1},
		{"boss touches right edge", 770, 120, 1, -1},
		{"inside playfield", 400, 40, 1, 1},
		{"still overlapping right edge keeps heading inward", 880, 40, -1, -1},
		{"still overlapping left edge keeps heading inward", -20, 40, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := &components.PositionComponent{X: tt.x, Y: 0}
			bounds := &components.BoundsComponent{Width: tt.width, Height: tt.width}
			enemy := &components.EnemyComponent{Type: types.EnemyFast, Speed: 100, DirX: tt.dir, PatrolSpeed: 260}

			MoveEnemy(pos, bounds, enemy, 900, 0.05)

			if enemy.DirX != tt.wantDir {
				t.Errorf("expected dir %v, got %v (x=%v)", tt.wantDir, enemy.DirX, pos.X)
			}
		})
	}
}

func TestMoveEnemyPatrolLeavesRightEdgeAfterOverlappingSpawn(t *testing.T) {
	// 出生点 x 最大可到 880，宽 120 的大型敌机会一出生就越过右边缘
	pos := &components.PositionComponent{X: 850, Y: -60}
	bounds := &components.BoundsComponent{Width: 120, Height: 120}
	enemy := &components.EnemyComponent{Type: types.EnemyBoss, Speed: 100, DirX: 1, PatrolSpeed: 260}

	for i := 0; i < 300; i++ {
		MoveEnemy(pos, bounds, enemy, 900, 1.0/60)
	}

	if pos.X+bounds.Width > 900 {
		t.Errorf("boss should have returned inside the playfield, x=%v", pos.X)
	}
	if pos.X < 0 {
		t.Errorf("boss should stay within the left edge, x=%v", pos.X)
	}
}

func TestMoveBulletAndItemLinear(t *testing.T) {
	bullet := &components.BulletComponent{SpeedX: -100, SpeedY: 400}
	pos := &components.PositionComponent{X: 200, Y: 500}
	for i := 0; i < 4; i++ {
		MoveBullet(pos, bullet, 0.025)
	}
	if math.Abs(pos.X-190) > epsilon || math.Abs(pos.Y-460) > epsilon {
		t.Errorf("expected bullet at (190,460), got (%v,%v)", pos.X, pos.Y)
	}

	item := &components.ItemComponent{FallSpeed: 80}
	itemPos := &components.PositionComponent{X: 10, Y: 10}
	MoveItem(itemPos, item, 0.5)
	if itemPos.Y != 50 || itemPos.X != 10 {
		t.Errorf("expected item at (10,50), got (%v,%v)", itemPos.X, itemPos.Y)
	}
}

func TestMovePlayerDirectionsIndependent(t *testing.T) {
	pos := &components.PositionComponent{X: 100, Y: 100}
	MovePlayer(pos, true, false, false, true, 200, 0.5)
	if pos.X != 200 || pos.Y != 0 {
		t.Errorf("diagonal move should sum two axes, got (%v,%v)", pos.X, pos.Y)
	}

	MovePlayer(pos, true, true, true, true, 200, 0.5)
	if pos.X != 200 || pos.Y != 0 {
		t.Errorf("opposite intents should cancel, got (%v,%v)", pos.X, pos.Y)
	}
}

func TestClampToPlayfield(t *testing.T) {
	bounds := &components.BoundsComponent{Width: 40, Height: 40}
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 100, 100, 100, 100},
		{"left/top", -5, -30, 0, 0},
		{"right/bottom", 880, 590, 860, 560},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := &components.PositionComponent{X: tt.x, Y: tt.y}
			ClampToPlayfield(pos, bounds, 900, 600)
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("expected (%v,%v), got (%v,%v)", tt.wantX, tt.wantY, pos.X, pos.Y)
			}
		})
	}
}

func TestKillIfOffscreen(t *testing.T) {
	bounds := &components.BoundsComponent{Width: 40, Height: 40}
	tests := []struct {
		name      string
		x, y      float64
		wantAlive bool
	}{
		{"on screen", 100, 100, true},
		{"spawn point above screen", 100, -60, true},
		{"partially inside margin", -110, 100, true},
		{"fully left of margin", -121, 100, false},
		{"fully right of margin", 981, 100, false},
		{"fully above margin", 100, -121, false},
		{"fully below margin", 100, 681, false},
		{"touching bottom margin", 100, 680, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := &components.PositionComponent{X: tt.x, Y: tt.y}
			life := components.NewLifeComponent()
			KillIfOffscreen(pos, bounds, life, 900, 600, 80)
			if life.IsAlive() != tt.wantAlive {
				t.Errorf("expected alive=%v, got %v", tt.wantAlive, life.IsAlive())
			}
		})
	}
}
