package player

// int16ToStereo converts interleaved int16 PCM to stereo frames.
// Mono input is duplicated to both channels.
func int16ToStereo(pcm []int16, channels int) [][2]float64 {
	if channels == 2 {
		frames := make([][2]float64, len(pcm)/2)
		for i := range frames {
			frames[i][0] = float64(pcm[i*2]) / 32768.0
			frames[i][1] = float64(pcm[i*2+1]) / 32768.0
		}
		return frames
	}
	frames := make([][2]float64, len(pcm))
	for i, s := range pcm {
		v := float64(s) / 32768.0
		frames[i] = [2]float64{v, v}
	}
	return frames
}

// pcm16ToStereo converts little-endian 16-bit PCM bytes to stereo frames.
func pcm16ToStereo(data []byte, channels int) [][2]float64 {
	stride := 2 * channels
	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		left := int16(data[off]) | int16(data[off+1])<<8
		right := left
		if channels == 2 {
			right = int16(data[off+2]) | int16(data[off+3])<<8
		}
		frames[i][0] = float64(left) / 32768.0
		frames[i][1] = float64(right) / 32768.0
	}
	return frames
}

// pcm24ToStereo converts little-endian 24-bit PCM bytes to stereo frames.
func pcm24ToStereo(data []byte, channels int) [][2]float64 {
	stride := 3 * channels
	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		left := int24(data[off:])
		right := left
		if channels == 2 {
			right = int24(data[off+3:])
		}
		frames[i][0] = float64(left) / 8388608.0
		frames[i][1] = float64(right) / 8388608.0
	}
	return frames
}

func int24(b []byte) int32 {
	v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if v&0x800000 != 0 {
		v |= ^0xFFFFFF
	}
	return v
}
