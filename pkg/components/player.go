package components

import "math"

// PlayerComponent 玩家战机状态
//
// 增益（Buff）状态机：
//   - 每个增益都是独立的倒计时，计时 > 0 时生效
//   - 倒计时在某帧跨过 0 时失效，并把临时修改过的属性（移速、射击冷却）恢复为基础值
//   - 重复激活只会重置计时，不会叠加时长
type PlayerComponent struct {
	HP    int // 当前生命值
	MaxHP int // 生命值上限（回血时的封顶值）

	BaseMoveSpeed float64 // 基础移速（像素/秒）
	MoveSpeed     float64 // 当前移速

	BaseFireCooldown  float64 // 普通射击冷却（秒）
	AutoFireCooldown  float64 // 狂暴状态下的射击冷却（秒）
	FireCooldown      float64 // 射速增益提供的冷却（仅 FireBoostTimer > 0 时生效）
	FireCooldownTimer float64 // 距离下一次可射击的剩余时间

	FireBoostTimer   float64
	SpeedBoostTimer  float64
	ShieldTimer      float64
	AutoFireTimer    float64
	SuperBulletTimer float64
	ShotgunTimer     float64
}

// TickBuffs 推进射击冷却与所有增益计时
func (p *PlayerComponent) TickBuffs(dt float64) {
	p.FireCooldownTimer = math.Max(0, p.FireCooldownTimer-dt)

	if tickTimer(&p.SpeedBoostTimer, dt) {
		p.MoveSpeed = p.BaseMoveSpeed
	}
	if tickTimer(&p.FireBoostTimer, dt) {
		p.FireCooldown = p.BaseFireCooldown
	}
	tickTimer(&p.ShieldTimer, dt)
	tickTimer(&p.AutoFireTimer, dt)
	tickTimer(&p.SuperBulletTimer, dt)
	tickTimer(&p.ShotgunTimer, dt)
}

// tickTimer 递减一个正在运行的计时器，返回本帧是否刚好到期
func tickTimer(timer *float64, dt float64) bool {
	if *timer <= 0 {
		return false
	}
	*timer -= dt
	if *timer <= 0 {
		*timer = 0
		return true
	}
	return false
}

// Heal 回复生命值，不超过上限
func (p *PlayerComponent) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.HP = min(p.HP+amount, p.MaxHP)
}

// Damage 受到一点撞击伤害
// 护盾生效时无效；返回本次伤害是否导致死亡（只会返回一次 true）
// 只修改生命值，返回 true 时调用方必须同时杀死实体；系统层应使用 systems.DamagePlayer
func (p *PlayerComponent) Damage() bool {
	if p.IsShielded() || p.HP <= 0 {
		return false
	}
	p.HP--
	return p.HP <= 0
}

// BoostSpeed 在基础移速上增加 bonus，持续 duration 秒
func (p *PlayerComponent) BoostSpeed(bonus, duration float64) {
	p.MoveSpeed = p.BaseMoveSpeed + bonus
	p.SpeedBoostTimer = duration
}

// BoostFireRate 在 duration 秒内使用 cooldown 作为射击冷却（取更短者）
func (p *PlayerComponent) BoostFireRate(cooldown, duration float64) {
	p.FireCooldown = cooldown
	p.FireBoostTimer = duration
}

// ActivateShield 激活护盾
func (p *PlayerComponent) ActivateShield(duration float64) {
	p.ShieldTimer = duration
}

// ActivateAutoFire 激活狂暴（高射速 + 超级子弹外观）
func (p *PlayerComponent) ActivateAutoFire(duration float64) {
	p.AutoFireTimer = duration
}

// ActivateSuperBullet 激活超级子弹
func (p *PlayerComponent) ActivateSuperBullet(duration float64) {
	p.SuperBulletTimer = duration
}

// ActivateShotgun 激活三向散射
func (p *PlayerComponent) ActivateShotgun(duration float64) {
	p.ShotgunTimer = duration
}

func (p *PlayerComponent) IsShielded() bool       { return p.ShieldTimer > 0 }
func (p *PlayerComponent) IsAutoFire() bool       { return p.AutoFireTimer > 0 }
func (p *PlayerComponent) IsSuperBullet() bool    { return p.SuperBulletTimer > 0 }
func (p *PlayerComponent) IsShotgun() bool        { return p.ShotgunTimer > 0 }
func (p *PlayerComponent) IsSpeedBoosted() bool   { return p.SpeedBoostTimer > 0 }
func (p *PlayerComponent) IsFireBoosted() bool    { return p.FireBoostTimer > 0 }
func (p *PlayerComponent) CanFire() bool          { return p.FireCooldownTimer <= 0 }
func (p *PlayerComponent) UsesSuperBullets() bool { return p.IsSuperBullet() || p.IsAutoFire() }

// EffectiveFireCooldown 计算本次射击后的冷却时间
// 狂暴时使用 AutoFireCooldown；射速增益生效且更短时取增益值
func (p *PlayerComponent) EffectiveFireCooldown() float64 {
	cooldown := p.BaseFireCooldown
	if p.IsAutoFire() {
		cooldown = p.AutoFireCooldown
	}
	if p.IsFireBoosted() {
		cooldown = math.Min(cooldown, p.FireCooldown)
	}
	return cooldown
}
