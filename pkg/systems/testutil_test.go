package systems

import (
	"testing"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// fixedIntents 固定的操作意图
type fixedIntents struct {
	intents types.ControlIntents
}

func (f *fixedIntents) Intents() types.ControlIntents { return f.intents }

// recordingSound 记录触发过的音效
type recordingSound struct {
	events []types.SoundEvent
}

func (r *recordingSound) Play(event types.SoundEvent) { r.events = append(r.events, event) }

func (r *recordingSound) count(event types.SoundEvent) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

// scriptedRandom 按预设序列返回随机数；序列耗尽后 Float64 返回 0，Intn 返回 n-1
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// mustCreate 用法: mustCreate(t)(entities.NewEnemy(...))
func mustCreate(t *testing.T) func(ecs.EntityID, error) ecs.EntityID {
	return func(id ecs.EntityID, err error) ecs.EntityID {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to create entity: %v", err)
		}
		return id
	}
}

func mustGet[T any](t *testing.T, em *ecs.EntityManager, id ecs.EntityID) T {
	t.Helper()
	comp, ok := ecs.GetComponent[T](em, id)
	if !ok {
		var zero T
		t.Fatalf("entity %d missing component %T", id, zero)
	}
	return comp
}

func isAlive(em *ecs.EntityManager, id ecs.EntityID) bool {
	life, ok := ecs.GetComponent[*components.LifeComponent](em, id)
	return ok && life.IsAlive()
}

func setPosition(t *testing.T, em *ecs.EntityManager, id ecs.EntityID, x, y float64) {
	t.Helper()
	pos := mustGet[*components.PositionComponent](t, em, id)
	pos.X, pos.Y = x, y
}

func newTestConfig() *config.GameConfig {
	return config.DefaultGameConfig()
}
