package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/decker502/airbattle/internal/audio"
	"github.com/decker502/airbattle/pkg/types"
)

// AudioManager 桌面端音效播放器
//
// 实现 systems.SoundSink：核心逻辑发出音效事件，这里把事件映射到预先合成的采样并播放。
// 每个事件缓存一个播放器，重复触发时倒带重播（连续射击只保留最新一次）。
type AudioManager struct {
	context         *audio.Context                     // 可为 nil（静音模式，用于测试和无音频设备环境）
	settingsManager *SettingsManager                   // 可为 nil，此时使用默认音量
	soundPlayers    map[types.SoundEvent]*audio.Player // 音效播放器缓存
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，为 nil 时所有播放请求被忽略
//   - sm: 设置管理器（读取音量和开关）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[types.SoundEvent]*audio.Player),
	}
}

// Play 播放一个音效事件（发出即忘）
func (am *AudioManager) Play(event types.SoundEvent) {
	am.PlaySound(event)
}

// PlaySound 播放音效，返回是否真正开始播放
func (am *AudioManager) PlaySound(event types.SoundEvent) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getSoundPlayer(event)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", event, err)
	}
	player.Play()

	return true
}

// PreloadSounds 预先合成并缓存所有音效，避免首次触发时卡顿
func (am *AudioManager) PreloadSounds() {
	if am.context == nil {
		return
	}
	events := sfx.Events()
	for _, event := range events {
		am.getSoundPlayer(event)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(events))
}

// SetSoundVolume 调整音效音量并同步到已缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(am.getSoundVolume())
	}
}

// GetSoundVolume 返回当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

func (am *AudioManager) soundEnabled() bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundEnabled
	}
	return true
}

func (am *AudioManager) getSoundPlayer(event types.SoundEvent) *audio.Player {
	if player, exists := am.soundPlayers[event]; exists {
		return player
	}

	samples, ok := sfx.Synthesize(event)
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", event)
		return nil
	}

	player, err := am.context.NewPlayer(sfx.NewPCMStream(samples))
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create player for %s: %v", event, err)
		return nil
	}
	am.soundPlayers[event] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
