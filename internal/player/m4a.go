package player

import (
	"context"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

// frameDecoder turns one demuxed M4A sample into stereo frames.
type frameDecoder interface {
	decode(data []byte) ([][2]float64, error)
	close()
}

type aacFrames struct {
	dec      *faad2.Decoder
	channels int
}

func (a *aacFrames) decode(data []byte) ([][2]float64, error) {
	pcm, err := a.dec.Decode(context.Background(), data)
	if err != nil {
		return nil, err
	}
	return int16ToStereo(pcm, a.channels), nil
}

func (a *aacFrames) close() {
	a.dec.Close(context.Background())
}

type alacFrames struct {
	dec        *alac.Alac
	channels   int
	sampleSize int
}

func (a *alacFrames) decode(data []byte) ([][2]float64, error) {
	raw := a.dec.Decode(data)
	if a.sampleSize == 24 {
		return pcm24ToStereo(raw, a.channels), nil
	}
	return pcm16ToStereo(raw, a.channels), nil
}

func (a *alacFrames) close() {}

// m4aStream demuxes with go-m4a and hands each sample to a frameDecoder.
type m4aStream struct {
	container *m4a.Reader
	closer    io.Closer
	frames    frameDecoder
	err       error
	next      int // index of the next container sample
	length    int // total frames

	pending [][2]float64
	offset  int
}

// decodeM4A decodes an M4A/MP4 file holding AAC or ALAC audio.
func decodeM4A(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	container, err := m4a.Open(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	sampleRate := container.SampleRate()
	channels := int(container.Channels())
	sampleSize := int(container.SampleSize())

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}

	var frames frameDecoder
	switch container.Codec() {
	case m4a.CodecAAC:
		dec, err := faad2.NewDecoder(context.Background())
		if err != nil {
			return nil, beep.Format{}, err
		}
		if err := dec.Init(context.Background(), container.CodecConfig()); err != nil {
			dec.Close(context.Background())
			return nil, beep.Format{}, err
		}
		frames = &aacFrames{dec: dec, channels: channels}

	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  int(sampleRate),
			SampleSize:  sampleSize,
			NumChannels: channels,
			FrameSize:   4096,
		})
		if err != nil {
			return nil, beep.Format{}, err
		}
		if sampleSize == 24 {
			format.Precision = 3
		}
		frames = &alacFrames{dec: dec, channels: channels, sampleSize: sampleSize}

	case m4a.CodecUnknown:
		return nil, beep.Format{}, errors.New("m4a: unsupported codec")
	}

	return &m4aStream{
		container: container,
		closer:    rc,
		frames:    frames,
		length:    int(container.Duration().Seconds() * float64(sampleRate)),
	}, format, nil
}

func (d *m4aStream) Stream(samples [][2]float64) (n int, ok bool) {
	if d.err != nil {
		return 0, false
	}

	for n < len(samples) {
		if d.offset < len(d.pending) {
			c := copy(samples[n:], d.pending[d.offset:])
			d.offset += c
			n += c
			continue
		}

		if d.next >= d.container.SampleCount() {
			return n, n > 0
		}

		data, err := d.container.ReadSample(d.next)
		if err != nil {
			d.err = err
			return n, n > 0
		}
		d.next++

		decoded, err := d.frames.decode(data)
		if err != nil {
			d.err = err
			return n, n > 0
		}
		d.pending = decoded
		d.offset = 0
	}

	return n, true
}

func (d *m4aStream) Err() error {
	return d.err
}

func (d *m4aStream) Len() int {
	return d.length
}

func (d *m4aStream) Position() int {
	pos := d.container.SampleTime(d.next)
	return int(pos.Seconds() * float64(d.container.SampleRate()))
}

func (d *m4aStream) Seek(p int) error {
	p = min(max(p, 0), d.length)
	rate := float64(d.container.SampleRate())
	d.next = d.container.SeekToTime(time.Duration(float64(p) / rate * float64(time.Second)))
	d.pending = nil
	d.offset = 0
	d.err = nil
	return nil
}

func (d *m4aStream) Close() error {
	d.frames.close()
	return d.closer.Close()
}
