package entities

import (
	"testing"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

func TestNewShieldEffect(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	playerID, err := NewPlayer(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}

	haloID, err := NewShieldEffect(em, cfg, playerID)
	if err != nil {
		t.Fatalf("NewShieldEffect() error = %v", err)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, haloID)
	if pos.X != 410 || pos.Y != 460 {
		t.Errorf("Halo should be centred on the player at (410,460), got (%v,%v)", pos.X, pos.Y)
	}

	effect, ok := ecs.GetComponent[*components.ShieldEffectComponent](em, haloID)
	if !ok {
		t.Fatal("Halo should have ShieldEffectComponent")
	}
	if effect.Owner != playerID || effect.OffsetX != 20 || effect.OffsetY != 20 {
		t.Errorf("Unexpected effect %+v", effect)
	}

	category, _ := ecs.GetComponent[*components.CategoryComponent](em, haloID)
	if category.Category != types.CategoryEffect || category.Category.Collides() {
		t.Error("Halo should be a non-colliding effect")
	}
}

func TestNewShieldEffectWithoutOwner(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, err := NewShieldEffect(em, config.DefaultGameConfig(), 42); err == nil {
		t.Error("Expected error for missing owner")
	}
	if em.PendingCount() != 0 {
		t.Error("No entity should be created for a missing owner")
	}
}
