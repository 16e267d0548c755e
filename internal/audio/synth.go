// Package audio 程序化合成游戏音效
//
// 所有音效都在启动时由代码生成，不依赖任何音频素材文件。
// 合成结果为单声道 [-1, 1] 浮点采样，桌面端通过 PCMStream 交给 ebiten 播放，
// 终端端直接把浮点采样喂给 beep。
package audio

import (
	"math"

	"github.com/decker502/airbattle/pkg/types"
)

// SampleRate 合成采样率（Hz），与 ebiten 音频上下文保持一致
const SampleRate = 48000

// Synthesize 生成指定音效事件的单声道采样
//
// 参数:
//   - event: 音效事件
//
// 返回:
//   - []float64: [-1, 1] 范围内的采样
//   - bool: 事件是否受支持
func Synthesize(event types.SoundEvent) ([]float64, bool) {
	switch event {
	case types.SoundShoot:
		return genShoot(), true
	case types.SoundExplosion:
		return genExplosion(), true
	case types.SoundItemPickup:
		return genPickup(), true
	default:
		return nil, false
	}
}

// Events 返回所有可合成的音效事件（用于预加载）
func Events() []types.SoundEvent {
	return []types.SoundEvent{types.SoundShoot, types.SoundExplosion, types.SoundItemPickup}
}

// genShoot 短促的下滑方波
func genShoot() []float64 {
	n := int(0.08 * SampleRate)
	buf := make([]float64, n)
	phase := 0.0
	for i := range buf {
		p := float64(i) / float64(n)
		freq := 1200 - 800*p
		phase += freq / SampleRate
		s := 1.0
		if math.Mod(phase, 1) >= 0.5 {
			s = -1
		}
		buf[i] = s * math.Exp(-p*5) * 0.35
	}
	return buf
}

// genExplosion 低通噪声 + 低频冲击
// 噪声源使用固定种子，保证每次合成的结果一致
func genExplosion() []float64 {
	n := int(0.35 * SampleRate)
	buf := make([]float64, n)
	seed := uint64(0x9e3779b97f4a7c15)
	lp := 0.0
	for i := range buf {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		lp = lp*0.85 + lcg(&seed)*0.15
		thump := math.Sin(2*math.Pi*(70-30*p)*t) * math.Exp(-p*12)
		buf[i] = softSat((lp*1.6 + thump*0.6) * math.Exp(-p*4))
	}
	return buf
}

// genPickup 两段上行音（五度音程）
func genPickup() []float64 {
	n := int(0.18 * SampleRate)
	buf := make([]float64, n)
	half := n / 2
	for i := range buf {
		t := float64(i) / SampleRate
		freq := 660.0
		local := float64(i) / float64(half)
		if i >= half {
			freq = 990
			local = float64(i-half) / float64(n-half)
		}
		env := math.Min(1, local*20) * math.Exp(-local*3)
		buf[i] = math.Sin(2*math.Pi*freq*t) * env * 0.4
	}
	return buf
}

// lcg 线性同余噪声，返回 [-1, 1)
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(*seed>>11)/float64(1<<53)*2 - 1
}

// softSat 软削波，把超出 [-1, 1] 的峰值平滑压回范围内
func softSat(x float64) float64 {
	return math.Tanh(x)
}

// EncodePCM16Stereo 把单声道浮点采样编码为 16 位小端立体声 PCM
// 左右声道写入相同的值，超出 [-1, 1] 的采样会被截断
func EncodePCM16Stereo(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		v := int16(s * math.MaxInt16)
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}
	return out
}
