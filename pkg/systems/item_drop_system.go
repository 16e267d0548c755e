package systems

import (
	"log"

	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/entities"
	"github.com/decker502/airbattle/pkg/types"
)

// ItemDropSystem 敌机被击毁时的道具掉落
//
// 两次掷骰：
//  1. [0,100) 掷骰 >= DropRatePercent 时不掉落
//  2. [0,totalWeight) 掷骰按 Heal, Rampage, SuperBullet, Shotgun, Shield 的顺序落入累计权重区间
type ItemDropSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           Random
}

// NewItemDropSystem 创建道具掉落系统
func NewItemDropSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng Random) *ItemDropSystem {
	return &ItemDropSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
	}
}

// RollItem 执行一次掉落判定
//
// 返回:
//   - types.ItemType: 选中的道具类型
//   - bool: 是否掉落
func (s *ItemDropSystem) RollItem() (types.ItemType, bool) {
	if s.rng.Intn(100) >= s.config.Items.DropRatePercent {
		return 0, false
	}

	weights := s.config.Items.Weights
	roll := s.rng.Intn(weights.Total())
	for i, weight := range weights.Ordered() {
		if roll < weight {
			return types.ItemTypes[i], true
		}
		roll -= weight
	}
	return 0, false
}

// TryDrop 在 (x, y) 处执行掉落判定，命中时生成道具实体
//
// 返回:
//   - ecs.EntityID: 生成的道具实体ID，未掉落时为 0
//   - bool: 是否生成了道具
func (s *ItemDropSystem) TryDrop(x, y float64) (ecs.EntityID, bool) {
	itemType, ok := s.RollItem()
	if !ok {
		return 0, false
	}

	itemID, err := entities.NewItem(s.entityManager, s.config, itemType, x, y)
	if err != nil {
		log.Printf("[ItemDropSystem] ERROR: failed to drop %s: %v", itemType, err)
		return 0, false
	}
	return itemID, true
}
