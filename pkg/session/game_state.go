// Package session 对局状态与帧驱动，不依赖任何图形或音频后端
package session

import (
	"github.com/google/uuid"
)

// Phase 对局阶段
type Phase int

const (
	PhaseRunning  Phase = iota // 进行中
	PhasePaused                // 暂停
	PhaseGameOver              // 玩家死亡，对局结束
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState 单局游戏状态
// 每局新建一个实例（重新开始时替换），由世界和各系统显式持有
type GameState struct {
	sessionID string
	score     int
	phase     Phase
}

// NewGameState 创建新的对局状态，分配会话ID
func NewGameState() *GameState {
	return &GameState{
		sessionID: uuid.NewString(),
		phase:     PhaseRunning,
	}
}

// SessionID 返回本局的会话ID
func (gs *GameState) SessionID() string {
	return gs.sessionID
}

// AddScore 增加分数，非正数被忽略（分数只增不减）
func (gs *GameState) AddScore(points int) {
	if points <= 0 {
		return
	}
	gs.score += points
}

// Score 返回当前分数
func (gs *GameState) Score() int {
	return gs.score
}

// Phase 返回当前阶段
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// SetPhase 切换阶段；对局结束后不可再切回其他阶段
func (gs *GameState) SetPhase(phase Phase) {
	if gs.phase == PhaseGameOver {
		return
	}
	gs.phase = phase
}

// IsGameOver 对局是否已结束
func (gs *GameState) IsGameOver() bool {
	return gs.phase == PhaseGameOver
}
