package entities

import (
	"testing"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// TestNewBullet 测试玩家子弹实体创建
func TestNewBullet(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name       string
		centerX    float64
		super      bool
		speedX     float64
		wantX      float64
		wantW      float64
		wantH      float64
		wantDamage int
		wantSprite string
	}{
		{"普通子弹", 450, false, 0, 447, 6, 12, 1, types.SpriteIDBullet},
		{"超级子弹", 450, true, 0, 440, 20, 60, 5, types.SpriteIDSuperBullet},
		{"左散射子弹", 450, false, -100, 447, 6, 12, 1, types.SpriteIDBullet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			bulletID, err := NewBullet(em, cfg, tt.centerX, 460, tt.super, tt.speedX)
			if err != nil {
				t.Fatalf("NewBullet() error = %v", err)
			}

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, bulletID)
			if pos.X != tt.wantX || pos.Y != 460 {
				t.Errorf("Expected (%v,460), got (%v,%v)", tt.wantX, pos.X, pos.Y)
			}

			bounds, _ := ecs.GetComponent[*components.BoundsComponent](em, bulletID)
			if bounds.Width != tt.wantW || bounds.Height != tt.wantH {
				t.Errorf("Expected size %vx%v, got %vx%v", tt.wantW, tt.wantH, bounds.Width, bounds.Height)
			}

			bullet, ok := ecs.GetComponent[*components.BulletComponent](em, bulletID)
			if !ok {
				t.Fatal("Bullet entity should have BulletComponent")
			}
			if bullet.Damage != tt.wantDamage || bullet.SpeedX != tt.speedX || bullet.SpeedY != 400 {
				t.Errorf("Unexpected bullet %+v", bullet)
			}

			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, bulletID)
			if sprite.SpriteID != tt.wantSprite {
				t.Errorf("Expected sprite %s, got %s", tt.wantSprite, sprite.SpriteID)
			}

			category, _ := ecs.GetComponent[*components.CategoryComponent](em, bulletID)
			if category.Category != types.CategoryBulletPlayer {
				t.Errorf("Expected bullet category, got %v", category.Category)
			}
		})
	}
}

func TestNewItem(t *testing.T) {
	cfg := config.DefaultGameConfig()

	for _, itemType := range types.ItemTypes {
		t.Run(itemType.String(), func(t *testing.T) {
			em := ecs.NewEntityManager()
			itemID, err := NewItem(em, cfg, itemType, 50, 60)
			if err != nil {
				t.Fatalf("NewItem() error = %v", err)
			}

			item, ok := ecs.GetComponent[*components.ItemComponent](em, itemID)
			if !ok {
				t.Fatal("Item entity should have ItemComponent")
			}
			if item.Type != itemType || item.FallSpeed != 80 {
				t.Errorf("Unexpected item %+v", item)
			}

			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, itemID)
			if sprite.SpriteID != "item_"+itemType.String() {
				t.Errorf("Unexpected sprite %s", sprite.SpriteID)
			}

			category, _ := ecs.GetComponent[*components.CategoryComponent](em, itemID)
			if category.Category != types.CategoryPowerup {
				t.Errorf("Expected powerup category, got %v", category.Category)
			}
		})
	}
}
