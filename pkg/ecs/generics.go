package ecs

import "reflect"

// GetComponent 泛型版本的组件获取
// T 必须是组件的指针类型，例如 *components.PositionComponent
//
// 用法:
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 泛型版本的组件存在性检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, reflect.TypeFor[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的活跃实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的活跃实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的活跃实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}
