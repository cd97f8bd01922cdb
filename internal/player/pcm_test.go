package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt16ToStereo(t *testing.T) {
	stereo := int16ToStereo([]int16{16384, -16384, 0, 32767}, 2)
	assert.Len(t, stereo, 2)
	assert.InDelta(t, 0.5, stereo[0][0], 1e-9)
	assert.InDelta(t, -0.5, stereo[0][1], 1e-9)

	mono := int16ToStereo([]int16{16384, -32768}, 1)
	assert.Len(t, mono, 2)
	assert.Equal(t, mono[0][0], mono[0][1])
	assert.InDelta(t, -1.0, mono[1][1], 1e-9)
}

func TestPCM16ToStereo(t *testing.T) {
	// 0x4000 = 16384, 0xC000 = -16384
	frames := pcm16ToStereo([]byte{0x00, 0x40, 0x00, 0xC0}, 2)
	assert.Len(t, frames, 1)
	assert.InDelta(t, 0.5, frames[0][0], 1e-9)
	assert.InDelta(t, -0.5, frames[0][1], 1e-9)
}

func TestPCM24ToStereo(t *testing.T) {
	// 0x400000 = 2^22 (0.5), 0xC00000 sign extends to -2^22
	frames := pcm24ToStereo([]byte{0x00, 0x00, 0x40, 0x00, 0x00, 0xC0}, 2)
	assert.Len(t, frames, 1)
	assert.InDelta(t, 0.5, frames[0][0], 1e-9)
	assert.InDelta(t, -0.5, frames[0][1], 1e-9)

	mono := pcm24ToStereo([]byte{0x00, 0x00, 0x40}, 1)
	assert.Len(t, mono, 1)
	assert.Equal(t, mono[0][0], mono[0][1])
}
