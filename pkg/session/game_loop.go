package session

// GameLoop 帧驱动器
// 负责把外部时钟的原始帧间隔转换成交给世界的 dt：
//   - dt 被限制在 maxDeltaTime 以内，避免卡顿后单步跨度过大
//   - 暂停期间不推进
//   - 恢复后的第一帧被丢弃（该帧的间隔包含整个暂停时长）
type GameLoop struct {
	state        *GameState
	maxDeltaTime float64
	skipNext     bool
}

// NewGameLoop 创建帧驱动器
//
// 参数:
//   - state: 对局状态（读取/切换暂停阶段）
//   - maxDeltaTime: 单帧 dt 上限（秒）
func NewGameLoop(state *GameState, maxDeltaTime float64) *GameLoop {
	return &GameLoop{
		state:        state,
		maxDeltaTime: maxDeltaTime,
	}
}

// Advance 计算本帧应交给世界的 dt
//
// 参数:
//   - rawDelta: 距上一帧的真实间隔（秒）
//
// 返回:
//   - float64: 截断后的 dt
//   - bool: 本帧是否应推进世界
func (l *GameLoop) Advance(rawDelta float64) (float64, bool) {
	if l.state.Phase() != PhaseRunning {
		return 0, false
	}
	if l.skipNext {
		l.skipNext = false
		return 0, false
	}
	if rawDelta < 0 {
		rawDelta = 0
	}
	return min(rawDelta, l.maxDeltaTime), true
}

// Pause 暂停（对局结束后无效）
func (l *GameLoop) Pause() {
	l.state.SetPhase(PhasePaused)
}

// Resume 恢复运行，并丢弃恢复后的第一帧
func (l *GameLoop) Resume() {
	if l.state.Phase() != PhasePaused {
		return
	}
	l.state.SetPhase(PhaseRunning)
	l.skipNext = true
}

// TogglePause 在暂停与运行之间切换
func (l *GameLoop) TogglePause() {
	if l.state.Phase() == PhasePaused {
		l.Resume()
	} else {
		l.Pause()
	}
}

// IsPaused 是否处于暂停
func (l *GameLoop) IsPaused() bool {
	return l.state.Phase() == PhasePaused
}
