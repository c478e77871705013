package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-splines/internal/simdops"
)

// pcm is decoded audio as planar channels normalized to [-1.0, 1.0].
type pcm struct {
	rate     int
	bitDepth int
	channels [][]float64
}

// frames returns the number of samples per channel.
func (p *pcm) frames() int {
	if len(p.channels) == 0 {
		return 0
	}
	return len(p.channels[0])
}

// readWAV decodes a whole WAV file.
func readWAV(path string) (*pcm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	return &pcm{
		rate:     format.SampleRate,
		bitDepth: bitDepth,
		channels: deinterleave(buf.Data, format.NumChannels, bitDepth),
	}, nil
}

// writeWAV encodes p as integer PCM.
func writeWAV(path string, p *pcm) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	numChannels := len(p.channels)
	encoder := wav.NewEncoder(f, p.rate, p.bitDepth, numChannels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: p.rate},
		Data:           interleave(p.channels, p.bitDepth),
		SourceBitDepth: p.bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleave splits interleaved int samples into normalized channels.
func deinterleave(data []int, numChannels, bitDepth int) [][]float64 {
	if numChannels <= 0 {
		return nil
	}

	frames := len(data) / numChannels
	channels := make([][]float64, numChannels)
	for ch := range numChannels {
		channels[ch] = make([]float64, frames)
	}

	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			channels[ch][i] = float64(data[base+ch])
		}
	}

	ops := simdops.Float64Ops()
	inv := 1.0 / getMaxValue(bitDepth)
	for _, ch := range channels {
		ops.Scale(ch, ch, inv)
	}
	return channels
}

// interleave converts normalized channels back to interleaved int samples,
// clamping to [-1.0, 1.0]. Channels are scaled in place.
func interleave(channels [][]float64, bitDepth int) []int {
	if len(channels) == 0 {
		return nil
	}

	maxVal := getMaxValue(bitDepth)
	ops := simdops.Float64Ops()
	for _, ch := range channels {
		for i, v := range ch {
			ch[i] = max(-1, min(1, v))
		}
		ops.Scale(ch, ch, maxVal)
	}

	frames := len(channels[0])
	flat := make([]float64, frames*len(channels))
	simdops.Interleave(flat, channels)

	out := make([]int, len(flat))
	for i, v := range flat {
		out[i] = int(math.Round(v))
	}
	return out
}
