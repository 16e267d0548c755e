package term

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	sfx "github.com/decker502/airbattle/internal/audio"
	"github.com/decker502/airbattle/pkg/types"
)

const sampleRate = beep.SampleRate(sfx.SampleRate)

// Speaker 终端前端的音效输出，实现 systems.SoundSink
// 所有音效在初始化时合成一次，播放时加入混音器
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	samples     map[types.SoundEvent][]float64
	initialized bool
	muted       bool
}

// NewSpeaker 创建音效输出并预先合成所有音效
// 调用 Initialize 之前 Play 不会发声
func NewSpeaker() *Speaker {
	s := &Speaker{
		mixer:   &beep.Mixer{},
		samples: make(map[types.SoundEvent][]float64),
	}
	for _, event := range sfx.Events() {
		if samples, ok := sfx.Synthesize(event); ok {
			s.samples[event] = samples
		}
	}
	return s
}

// Initialize 打开音频设备
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	log.Printf("[Speaker] Audio initialized at %d Hz", sfx.SampleRate)
	return nil
}

// Close 停止所有音效
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// SetMuted 静音开关
func (s *Speaker) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
}

// Muted 是否静音
func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Play 播放一个音效事件（发出即忘）
func (s *Speaker) Play(event types.SoundEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.muted {
		return
	}
	samples, ok := s.samples[event]
	if !ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(newSampleStreamer(samples))
	speaker.Unlock()
}

// sampleStreamer 把单声道采样作为立体声流输出
type sampleStreamer struct {
	samples []float64
	pos     int
}

func newSampleStreamer(samples []float64) *sampleStreamer {
	return &sampleStreamer{samples: samples}
}

func (s *sampleStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(buf) && s.pos < len(s.samples) {
		v := s.samples[s.pos]
		buf[n][0], buf[n][1] = v, v
		n++
		s.pos++
	}
	return n, true
}

func (s *sampleStreamer) Err() error {
	return nil
}
