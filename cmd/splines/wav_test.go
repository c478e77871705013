package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	splines "github.com/tphakala/go-splines"
)

// stereoRamp builds a 16-bit stereo signal with distinct integer sample
// values per channel.
func stereoRamp(frames int) (*pcm, [][]int) {
	ints := [][]int{make([]int, frames), make([]int, frames)}
	p := &pcm{rate: 8000, bitDepth: 16, channels: [][]float64{make([]float64, frames), make([]float64, frames)}}
	for i := range frames {
		ints[0][i] = i * 100
		ints[1][i] = -i * 50
		p.channels[0][i] = float64(ints[0][i]) / maxInt16
		p.channels[1][i] = float64(ints[1][i]) / maxInt16
	}
	return p, ints
}

func TestReadWAV_FileNotFound(t *testing.T) {
	_, err := readWAV("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestReadWAV_InvalidWAV(t *testing.T) {
	invalidFile := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(invalidFile, []byte("not a wav file"), 0o644))

	_, err := readWAV(invalidFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestWriteWAV_InvalidDirectory(t *testing.T) {
	p, _ := stereoRamp(4)
	err := writeWAV("/nonexistent/dir/output.wav", p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.wav")
	p, ints := stereoRamp(50)
	require.NoError(t, writeWAV(path, p))

	got, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 8000, got.rate)
	assert.Equal(t, 16, got.bitDepth)
	require.Len(t, got.channels, 2)
	require.Equal(t, 50, got.frames())

	for ch := range got.channels {
		for i, v := range got.channels[ch] {
			assert.InDelta(t, float64(ints[ch][i])/maxInt16, v, 1e-12)
		}
	}
}

func TestInterleave_Clamps(t *testing.T) {
	out := interleave([][]float64{{0.5, 2}, {-3, -0.5}}, 16)
	assert.Equal(t, []int{16384, -32767, 32767, -16384}, out)
}

func TestGetMaxValue(t *testing.T) {
	assert.Equal(t, maxInt16, getMaxValue(16))
	assert.Equal(t, maxInt24, getMaxValue(24))
	assert.Equal(t, maxInt32, getMaxValue(32))
	assert.Equal(t, maxInt16, getMaxValue(8))
}

func TestResamplePCM_Upsample(t *testing.T) {
	in, _ := stereoRamp(10)
	want := [][]float64{append([]float64(nil), in.channels[0]...), append([]float64(nil), in.channels[1]...)}

	out, err := resamplePCM(context.Background(), in, 16000, splines.Linear, true, l.NewNopLoggerWrapper())
	require.NoError(t, err)

	assert.Equal(t, 16000, out.rate)
	require.Equal(t, 20, out.frames())

	for ch := range out.channels {
		for j, v := range out.channels[ch] {
			switch {
			case j == 19:
				assert.Equal(t, 0.0, v, "query past the last sample is silent")
			case j%2 == 0:
				assert.Equal(t, want[ch][j/2], v, "exact hit at frame %d", j)
			default:
				assert.InDelta(t, (want[ch][j/2]+want[ch][j/2+1])/2, v, 1e-12)
			}
		}
	}
}

func TestResamplePCM_Downsample(t *testing.T) {
	in, _ := stereoRamp(9)
	out, err := resamplePCM(context.Background(), in, 4000, splines.CatmullRom, false, l.NewNopLoggerWrapper())
	require.NoError(t, err)

	require.Equal(t, 4, out.frames())
	for j, v := range out.channels[0] {
		assert.Equal(t, in.channels[0][2*j], v)
	}
}

func TestResamplePCM_InvalidRate(t *testing.T) {
	_, err := resamplePCM(context.Background(), &pcm{}, 8000, splines.Linear, false, l.NewNopLoggerWrapper())
	assert.ErrorIs(t, err, splines.ErrInvalidConfig)
}

func TestWAVCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.wav")
	output := filepath.Join(dir, "out.wav")

	p, ints := stereoRamp(100)
	require.NoError(t, writeWAV(input, p))

	_, err := execute(t, "wav", "--rate", "16", "--method", "linear", input, output)
	require.NoError(t, err)

	got, err := readWAV(output)
	require.NoError(t, err)
	assert.Equal(t, 16000, got.rate)
	require.Len(t, got.channels, 2)
	require.Equal(t, 200, got.frames())

	for ch := range got.channels {
		for j := 0; j < got.frames(); j += 2 {
			assert.InDelta(t, float64(ints[ch][j/2])/maxInt16, got.channels[ch][j], 1e-12, "channel %d frame %d", ch, j)
		}
	}
}

func TestWAVCommand_Errors(t *testing.T) {
	_, err := execute(t, "wav", "--method", "akima", "a.wav", "b.wav")
	assert.ErrorIs(t, err, splines.ErrUnknownMethod)

	_, err = execute(t, "wav", "--rate", "0", "a.wav", "b.wav")
	assert.ErrorIs(t, err, splines.ErrInvalidConfig)

	_, err = execute(t, "wav", "only-one.wav")
	assert.Error(t, err)
}
