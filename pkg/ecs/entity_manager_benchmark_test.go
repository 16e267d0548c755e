package ecs

import (
	"testing"
)

// ========== 测试组件定义 ==========

type benchmarkPos struct {
	X, Y float64
}

type benchmarkBounds struct {
	Width, Height float64
}

type benchmarkLife struct {
	Alive bool
}

// setupBenchmarkEntities 创建指定数量的活跃实体，每个实体包含三个组件
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		entity := em.CreateEntity()
		em.AddComponent(entity, &benchmarkPos{X: float64(i), Y: float64(i * 2)})
		em.AddComponent(entity, &benchmarkBounds{Width: 40, Height: 40})
		if i%2 == 0 {
			em.AddComponent(entity, &benchmarkLife{Alive: true})
		}
	}
	em.FlushPending()
	return em
}

// BenchmarkGetEntitiesWith3 一帧内典型的实体查询（~200 个实体）
func BenchmarkGetEntitiesWith3(b *testing.B) {
	em := setupBenchmarkEntities(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith3[*benchmarkPos, *benchmarkBounds, *benchmarkLife](em)
	}
}

// BenchmarkCreateFlushDestroy 模拟每帧生成/清理子弹的开销
func BenchmarkCreateFlushDestroy(b *testing.B) {
	em := setupBenchmarkEntities(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchmarkPos{})
		em.FlushPending()
		em.DestroyEntity(id)
		em.RemoveMarkedEntities()
	}
}
