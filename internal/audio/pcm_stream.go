package audio

import (
	"fmt"
	"io"
)

// PCMStream 内存中的 16 位立体声 PCM 数据流
// 实现 io.ReadSeeker，可直接交给 ebiten 的 audio.Context.NewPlayer
type PCMStream struct {
	data   []byte
	offset int64
}

// NewPCMStream 由单声道浮点采样创建 PCM 数据流
func NewPCMStream(samples []float64) *PCMStream {
	return &PCMStream{data: EncodePCM16Stereo(samples)}
}

// Read 实现 io.Reader
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek 实现 io.Seeker
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length 返回 PCM 数据总字节数
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}
