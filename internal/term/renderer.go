package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/airbattle/pkg/components"
	"github.com/decker502/airbattle/pkg/ecs"
	"github.com/decker502/airbattle/pkg/types"
)

// HUDRows 屏幕顶部留给状态栏的行数
const HUDRows = 1

// glyph 贴图在终端中的字符与样式
type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[string]glyph{
	types.SpriteIDPlayer:             {'A', tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)},
	types.SpriteIDEnemyNormal:        {'V', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	types.SpriteIDEnemyFast:          {'W', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
	types.SpriteIDEnemyBoss:          {'M', tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)},
	types.SpriteIDBullet:             {'|', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	types.SpriteIDSuperBullet:        {'!', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
	types.SpriteIDShield:             {'o', tcell.StyleDefault.Foreground(tcell.ColorLightCyan)},
	types.ItemHeal.SpriteID():        {'+', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	types.ItemRampage.SpriteID():     {'R', tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)},
	types.ItemSuperBullet.SpriteID(): {'S', tcell.StyleDefault.Foreground(tcell.ColorGold)},
	types.ItemShotgun.SpriteID():     {'G', tcell.StyleDefault.Foreground(tcell.ColorSilver)},
	types.ItemShield.SpriteID():      {'D', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
}

var fallbackGlyph = glyph{'?', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)}

type sprite struct {
	sprite components.SpriteComponent
	x, y   float64
}

// Renderer 终端渲染端，实现 systems.RenderSink
// 把像素坐标的场地等比映射到终端的字符格
type Renderer struct {
	fieldWidth, fieldHeight float64
	sprites                 map[ecs.EntityID]*sprite
	order                   []ecs.EntityID
}

// NewRenderer 创建终端渲染端
//
// 参数:
//   - fieldWidth, fieldHeight: 逻辑场地尺寸（像素）
func NewRenderer(fieldWidth, fieldHeight float64) *Renderer {
	return &Renderer{
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
		sprites:     make(map[ecs.EntityID]*sprite),
	}
}

func (r *Renderer) Attach(id ecs.EntityID, s components.SpriteComponent) {
	if existing, ok := r.sprites[id]; ok {
		existing.sprite = s
		return
	}
	r.sprites[id] = &sprite{sprite: s}
	r.order = append(r.order, id)
}

func (r *Renderer) Move(id ecs.EntityID, x, y float64) {
	if s, ok := r.sprites[id]; ok {
		s.x, s.y = x, y
	}
}

func (r *Renderer) Detach(id ecs.EntityID) {
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

// Reset 清空所有已注册对象（重开对局时使用）
func (r *Renderer) Reset() {
	r.sprites = make(map[ecs.EntityID]*sprite)
	r.order = nil
}

// Len 当前已注册的对象数量
func (r *Renderer) Len() int {
	return len(r.order)
}

// Draw 绘制状态栏、全部对象和可选的居中提示
func (r *Renderer) Draw(screen tcell.Screen, status string, overlay []string) {
	screen.Clear()
	cols, rows := screen.Size()
	fieldRows := rows - HUDRows
	if cols <= 0 || fieldRows <= 0 {
		screen.Show()
		return
	}

	drawText(screen, 0, 0, status, tcell.StyleDefault.Reverse(true))
	for x := len([]rune(status)); x < cols; x++ {
		screen.SetContent(x, 0, ' ', nil, tcell.StyleDefault.Reverse(true))
	}

	for _, id := range r.order {
		s := r.sprites[id]
		g, ok := glyphs[s.sprite.SpriteID]
		if !ok {
			g = fallbackGlyph
		}
		c0, r0, c1, r1 := r.cellRect(s, cols, fieldRows)
		outline := s.sprite.SpriteID == types.SpriteIDShield
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				if outline && row != r0 && row != r1-1 && col != c0 && col != c1-1 {
					continue
				}
				screen.SetContent(col, row+HUDRows, g.r, nil, g.style)
			}
		}
	}

	top := HUDRows + fieldRows/2 - len(overlay)/2
	for i, line := range overlay {
		left := (cols - len([]rune(line))) / 2
		drawText(screen, left, top+i, line, tcell.StyleDefault.Bold(true))
	}

	screen.Show()
}

// cellRect 计算对象覆盖的字符格区间 [c0, c1) x [r0, r1)，至少占一格，并裁剪到屏幕内
func (r *Renderer) cellRect(s *sprite, cols, rows int) (c0, r0, c1, r1 int) {
	sx := float64(cols) / r.fieldWidth
	sy := float64(rows) / r.fieldHeight

	c0 = int(math.Floor(s.x * sx))
	r0 = int(math.Floor(s.y * sy))
	c1 = max(c0+1, int(math.Ceil((s.x+s.sprite.Width)*sx)))
	r1 = max(r0+1, int(math.Ceil((s.y+s.sprite.Height)*sy)))

	c0, c1 = max(c0, 0), min(c1, cols)
	r0, r1 = max(r0, 0), min(r1, rows)
	return c0, r0, c1, r1
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
