package systems

import (
	"math"
	"testing"

	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/types"
)

func newTestDifficultyEngine() *DifficultyEngine {
	return NewDifficultyEngine(config.DefaultGameConfig())
}

func TestDifficultyLevel(t *testing.T) {
	engine := newTestDifficultyEngine()

	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"开局", 0, 0},
		{"负分按 0 处理", -300, 0},
		{"未满一级", 499, 0},
		{"刚好一级", 500, 1},
		{"中期", 3250, 6},
		{"刚好封顶", 12500, 25},
		{"超过封顶", 99999, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Level(tt.score); got != tt.want {
				t.Errorf("Level(%d) = %d, want %d", tt.score, got, tt.want)
			}
		})
	}
}

func TestDifficultyLevelMonotonic(t *testing.T) {
	engine := newTestDifficultyEngine()
	prev := engine.Level(0)
	for score := 0; score <= 20000; score += 37 {
		level := engine.Level(score)
		if level < prev {
			t.Fatalf("level decreased at score %d: %d -> %d", score, prev, level)
		}
		if level > 25 {
			t.Fatalf("level %d exceeds cap at score %d", level, score)
		}
		prev = level
	}
}

func TestDifficultyScenarios(t *testing.T) {
	engine := newTestDifficultyEngine()

	tests := []struct {
		name         string
		score        int
		wantLevel    int
		wantInterval float64
		wantBoss     int
		wantFast     int
		wantNormal   int
		wantMult     float64
	}{
		{"score 0", 0, 0, 0.8, 10, 25, 65, 1.0},
		{"score 12500", 12500, 25, 0.2, 35, 50, 15, 3.5},
		{"score 5000", 5000, 10, 0.4, 20, 35, 45, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := engine.Level(tt.score)
			if level != tt.wantLevel {
				t.Fatalf("expected level %d, got %d", tt.wantLevel, level)
			}
			if got := engine.SpawnInterval(level); math.Abs(got-tt.wantInterval) > 1e-9 {
				t.Errorf("expected interval %v, got %v", tt.wantInterval, got)
			}
			boss, fast := engine.EnemyChances(level)
			if boss != tt.wantBoss || fast != tt.wantFast {
				t.Errorf("expected chances boss=%d fast=%d, got boss=%d fast=%d", tt.wantBoss, tt.wantFast, boss, fast)
			}
			if normal := 100 - boss - fast; normal != tt.wantNormal {
				t.Errorf("expected normal chance %d, got %d", tt.wantNormal, normal)
			}
			if got := engine.StatMultiplier(level); math.Abs(got-tt.wantMult) > 1e-9 {
				t.Errorf("expected multiplier %v, got %v", tt.wantMult, got)
			}
		})
	}
}

func TestPickEnemyTypeBuckets(t *testing.T) {
	engine := newTestDifficultyEngine()

	tests := []struct {
		roll  int
		level int
		want  types.EnemyType
	}{
		{0, 0, types.EnemyBoss},
		{9, 0, types.EnemyBoss},
		{10, 0, types.EnemyFast},
		{34, 0, types.EnemyFast},
		{35, 0, types.EnemyNormal},
		{99, 0, types.EnemyNormal},
		{34, 25, types.EnemyBoss},
		{35, 25, types.EnemyFast},
		{84, 25, types.EnemyFast},
		{85, 25, types.EnemyNormal},
	}

	for _, tt := range tests {
		if got := engine.PickEnemyType(tt.roll, tt.level); got != tt.want {
			t.Errorf("PickEnemyType(%d, %d) = %v, want %v", tt.roll, tt.level, got, tt.want)
		}
	}
}
