package systems

import (
	"math"
	"testing"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/entities"
	"github.com/decker502/airbattle/pkg/systems/mocks"
	"github.com/decker502/airbattle/pkg/types"
	"go.uber.org/mock/gomock"
)

type playerFixture struct {
	em       *ecs.EntityManager
	playerID ecs.EntityID
	pos      *components.PositionComponent
	bounds   *components.BoundsComponent
	player   *components.PlayerComponent
}

func newPlayerFixture(t *testing.T) *playerFixture {
	t.Helper()
	em := ecs.NewEntityManager()
	id := mustCreate(t)(entities.NewPlayer(em, newTestConfig()))
	em.FlushPending()
	return &playerFixture{
		em:       em,
		playerID: id,
		pos:      mustGet[*components.PositionComponent](t, em, id),
		bounds:   mustGet[*components.BoundsComponent](t, em, id),
		player:   mustGet[*components.PlayerComponent](t, em, id),
	}
}

// pendingBullets 返回待加入队列中的子弹
func pendingBullets(t *testing.T, em *ecs.EntityManager) []ecs.EntityID {
	t.Helper()
	var bullets []ecs.EntityID
	for _, id := range em.FlushPending() {
		if ecs.HasComponent[*components.BulletComponent](em, id) {
			bullets = append(bullets, id)
		}
	}
	return bullets
}

func TestPlayerFireSpawnsCenteredBullet(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(p *components.PlayerComponent)
		wantX      float64
		wantDamage int
		wantWidth  float64
		wantSprite string
	}{
		{"normal bullet", func(p *components.PlayerComponent) {}, 447, 1, 6, types.SpriteIDBullet},
		{"super bullet", func(p *components.PlayerComponent) { p.ActivateSuperBullet(10) }, 440, 5, 20, types.SpriteIDSuperBullet},
		{"auto-fire uses super bullet", func(p *components.PlayerComponent) { p.ActivateAutoFire(10) }, 440, 5, 20, types.SpriteIDSuperBullet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sound := mocks.NewMockSoundSink(ctrl)
			sound.EXPECT().Play(types.SoundShoot).Times(1)

			f := newPlayerFixture(t)
			tt.setup(f.player)
			ps := NewPlayerSystem(f.em, newTestConfig(), &fixedIntents{}, sound)
			ps.Fire(f.pos, f.bounds, f.player)

			bullets := pendingBullets(t, f.em)
			if len(bullets) != 1 {
				t.Fatalf("expected 1 bullet, got %d", len(bullets))
			}
			pos := mustGet[*components.PositionComponent](t, f.em, bullets[0])
			if pos.X != tt.wantX || pos.Y != 460 {
				t.Errorf("expected bullet at (%v,460), got (%v,%v)", tt.wantX, pos.X, pos.Y)
			}
			bullet := mustGet[*components.BulletComponent](t, f.em, bullets[0])
			if bullet.Damage != tt.wantDamage || bullet.SpeedX != 0 || bullet.SpeedY != 400 {
				t.Errorf("unexpected bullet %+v", bullet)
			}
			sprite := mustGet[*components.SpriteComponent](t, f.em, bullets[0])
			if sprite.SpriteID != tt.wantSprite || sprite.Width != tt.wantWidth {
				t.Errorf("expected sprite %s width %v, got %s width %v", tt.wantSprite, tt.wantWidth, sprite.SpriteID, sprite.Width)
			}
		})
	}
}

func TestPlayerShotgunSpread(t *testing.T) {
	f := newPlayerFixture(t)
	f.player.ActivateShotgun(10)
	ps := NewPlayerSystem(f.em, newTestConfig(), &fixedIntents{}, &recordingSound{})

	ps.Fire(f.pos, f.bounds, f.player)

	bullets := pendingBullets(t, f.em)
	if len(bullets) != 3 {
		t.Fatalf("expected 3 bullets, got %d", len(bullets))
	}
	wantSpeeds := []float64{0, -100, 100}
	for i, id := range bullets {
		bullet := mustGet[*components.BulletComponent](t, f.em, id)
		if bullet.SpeedX != wantSpeeds[i] {
			t.Errorf("bullet %d: expected speedX %v, got %v", i, wantSpeeds[i], bullet.SpeedX)
		}
		pos := mustGet[*components.PositionComponent](t, f.em, id)
		if pos.X != 447 || pos.Y != 460 {
			t.Errorf("bullet %d should start at the muzzle, got (%v,%v)", i, pos.X, pos.Y)
		}
	}
}

func TestPlayerFireRespectsCooldown(t *testing.T) {
	f := newPlayerFixture(t)
	sound := &recordingSound{}
	intents := &fixedIntents{intents: types.ControlIntents{Fire: true}}
	ps := NewPlayerSystem(f.em, newTestConfig(), intents, sound)

	// 0.25s 冷却，每帧 0.1s：第 0、3、6 帧射击
	for frame := 0; frame < 7; frame++ {
		ps.UpdatePlayer(f.pos, f.bounds, f.player, 0.1)
	}

	if got := sound.count(types.SoundShoot); got != 3 {
		t.Errorf("expected 3 shots in 0.7s, got %d", got)
	}
	if got := len(pendingBullets(t, f.em)); got != 3 {
		t.Errorf("expected 3 bullets, got %d", got)
	}
}

func TestPlayerAutoFireCooldown(t *testing.T) {
	f := newPlayerFixture(t)
	f.player.ActivateAutoFire(10)
	ps := NewPlayerSystem(f.em, newTestConfig(), &fixedIntents{}, &recordingSound{})

	ps.Fire(f.pos, f.bounds, f.player)
	if math.Abs(f.player.FireCooldownTimer-0.1) > epsilon {
		t.Errorf("auto-fire cooldown should be 0.1, got %v", f.player.FireCooldownTimer)
	}
}

func TestPlayerNoFireWithoutIntent(t *testing.T) {
	f := newPlayerFixture(t)
	intents := &fixedIntents{intents: types.ControlIntents{Right: true}}
	ps := NewPlayerSystem(f.em, newTestConfig(), intents, &recordingSound{})

	ps.UpdatePlayer(f.pos, f.bounds, f.player, 0.1)

	if f.em.PendingCount() != 0 {
		t.Errorf("no fire intent, expected no bullets, got %d", f.em.PendingCount())
	}
	if math.Abs(f.pos.X-452) > epsilon {
		t.Errorf("expected x 430 + 220*0.1 = 452, got %v", f.pos.X)
	}
}

func TestPlayerBoostedSpeedMovesFaster(t *testing.T) {
	f := newPlayerFixture(t)
	f.player.BoostSpeed(100, 10)
	intents := &fixedIntents{intents: types.ControlIntents{Up: true}}
	ps := NewPlayerSystem(f.em, newTestConfig(), intents, &recordingSound{})

	ps.UpdatePlayer(f.pos, f.bounds, f.player, 0.1)

	if math.Abs(f.pos.Y-448) > epsilon {
		t.Errorf("expected y 480 - 320*0.1 = 448, got %v", f.pos.Y)
	}
}

func TestDamagePlayerKillsOnLastHP(t *testing.T) {
	tests := []struct {
		name      string
		hp        int
		shield    float64
		wantDeath bool
		wantHP    int
		wantAlive bool
	}{
		{"normal contact", 3, 0, false, 2, true},
		{"last HP kills player", 1, 0, true, 0, false},
		{"shield blocks damage", 1, 10, false, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPlayerFixture(t)
			f.player.HP = tt.hp
			f.player.ActivateShield(tt.shield)

			if got := DamagePlayer(f.em, f.playerID); got != tt.wantDeath {
				t.Errorf("expected death=%v, got %v", tt.wantDeath, got)
			}
			if f.player.HP != tt.wantHP {
				t.Errorf("expected HP %d, got %d", tt.wantHP, f.player.HP)
			}
			if isAlive(f.em, f.playerID) != tt.wantAlive {
				t.Errorf("expected alive=%v, got %v", tt.wantAlive, isAlive(f.em, f.playerID))
			}
		})
	}
}

func TestDamagePlayerReportsDeathOnce(t *testing.T) {
	f := newPlayerFixture(t)
	f.player.HP = 1

	if !DamagePlayer(f.em, f.playerID) {
		t.Fatal("first lethal hit should report death")
	}
	if DamagePlayer(f.em, f.playerID) {
		t.Error("dead player should not die twice")
	}
	if DamagePlayer(f.em, ecs.EntityID(9999)) {
		t.Error("unknown entity should be ignored")
	}
}
