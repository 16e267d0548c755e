package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// spriteColors 贴图ID到占位图形颜色的映射
var spriteColors = map[string]color.RGBA{
	types.SpriteIDPlayer:             {R: 80, G: 200, B: 255, A: 255},
	types.SpriteIDEnemyNormal:        {R: 230, G: 80, B: 80, A: 255},
	types.SpriteIDEnemyFast:          {R: 255, G: 160, B: 40, A: 255},
	types.SpriteIDEnemyBoss:          {R: 170, G: 40, B: 200, A: 255},
	types.SpriteIDBullet:             {R: 255, G: 255, B: 140, A: 255},
	types.SpriteIDSuperBullet:        {R: 255, G: 240, B: 0, A: 255},
	types.SpriteIDShield:             {R: 120, G: 220, B: 255, A: 160},
	types.ItemHeal.SpriteID():        {R: 90, G: 230, B: 90, A: 255},
	types.ItemRampage.SpriteID():     {R: 255, G: 90, B: 40, A: 255},
	types.ItemSuperBullet.SpriteID(): {R: 255, G: 220, B: 60, A: 255},
	types.ItemShotgun.SpriteID():     {R: 200, G: 200, B: 200, A: 255},
	types.ItemShield.SpriteID():      {R: 60, G: 160, B: 255, A: 255},
}

// fallbackSpriteColor 未知贴图ID使用的颜色
var fallbackSpriteColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// drawnSprite 渲染端记录的一个可绘制对象
type drawnSprite struct {
	sprite components.SpriteComponent
	x, y   float64
}

// spriteRenderer 实现 systems.RenderSink
// 世界通过 Attach/Move/Detach 通知可绘制对象的生命周期，Draw 按加入顺序绘制
type spriteRenderer struct {
	sprites map[ecs.EntityID]*drawnSprite
	order   []ecs.EntityID
}

func newSpriteRenderer() *spriteRenderer {
	return &spriteRenderer{
		sprites: make(map[ecs.EntityID]*drawnSprite),
	}
}

// Attach 注册新的可绘制对象（重复注册只更新贴图）
func (r *spriteRenderer) Attach(id ecs.EntityID, sprite components.SpriteComponent) {
	if s, ok := r.sprites[id]; ok {
		s.sprite = sprite
		return
	}
	r.sprites[id] = &drawnSprite{sprite: sprite}
	r.order = append(r.order, id)
}

// Move 更新可绘制对象的位置（左上角）
func (r *spriteRenderer) Move(id ecs.EntityID, x, y float64) {
	if s, ok := r.sprites[id]; ok {
		s.x = x
		s.y = y
	}
}

// Detach 移除可绘制对象
func (r *spriteRenderer) Detach(id ecs.EntityID) {
	if _, ok := r.sprites[id]; !ok {
		return
	}
	delete(r.sprites, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len 当前已注册的可绘制对象数量
func (r *spriteRenderer) Len() int {
	return len(r.order)
}

// Draw 以占位图形绘制所有对象
// 护盾光环画成描边圆，其余对象画成实心矩形
func (r *spriteRenderer) Draw(screen *ebiten.Image) {
	for _, id := range r.order {
		s := r.sprites[id]
		clr, ok := spriteColors[s.sprite.SpriteID]
		if !ok {
			clr = fallbackSpriteColor
		}

		x, y := float32(s.x), float32(s.y)
		w, h := float32(s.sprite.Width), float32(s.sprite.Height)
		if s.sprite.SpriteID == types.SpriteIDShield {
			vector.StrokeCircle(screen, x+w/2, y+h/2, w/2, 3, clr, true)
			continue
		}
		vector.DrawFilledRect(screen, x, y, w, h, clr, true)
	}
}
