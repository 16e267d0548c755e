package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 实体生命周期：
//   - CreateEntity 创建的实体先进入待加入队列，对查询不可见
//   - FlushPending 在帧开始的安全点把待加入实体按创建顺序提升为活跃实体
//   - DestroyEntity 只做标记，RemoveMarkedEntities 在帧末统一删除
//
// 活跃实体保持加入顺序，同一帧内的遍历结果是确定的。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 活跃实体（按加入顺序）
	live []EntityID
	// 待加入实体（按创建顺序）
	pending []EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		live:              make([]EntityID, 0),
		pending:           make([]EntityID, 0),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
// 新实体处于待加入状态，直到下一次 FlushPending
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.pending = append(em.pending, id)
	return id
}

// FlushPending 将所有待加入实体提升为活跃实体
// 返回本次提升的实体ID（按创建顺序），调用方可据此注册渲染句柄
func (em *EntityManager) FlushPending() []EntityID {
	if len(em.pending) == 0 {
		return nil
	}
	promoted := em.pending
	em.live = append(em.live, promoted...)
	em.pending = make([]EntityID, 0)
	return promoted
}

// Entities 返回所有活跃实体（按加入顺序）
// 返回的切片归 EntityManager 所有，调用方不得修改
func (em *EntityManager) Entities() []EntityID {
	return em.live
}

// PendingCount 返回待加入实体数量
func (em *EntityManager) PendingCount() int {
	return len(em.pending)
}

// EntityCount 返回活跃实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.live)
}

// Exists 检查实体是否存在（活跃或待加入）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 活跃列表和待加入列表中的剩余实体保持原有顺序
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}

	marked := make(map[EntityID]struct{}, len(em.entitiesToDestroy))
	for _, id := range em.entitiesToDestroy {
		marked[id] = struct{}{}
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	em.live = compact(em.live, marked)
	em.pending = compact(em.pending, marked)
}

// compact 原地过滤掉被标记的实体，保持顺序
func compact(ids []EntityID, marked map[EntityID]struct{}) []EntityID {
	kept := ids[:0]
	for _, id := range ids {
		if _, gone := marked[id]; !gone {
			kept = append(kept, id)
		}
	}
	return kept
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有活跃实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按加入顺序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.live {
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
