package tone

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/jsphweid/steelchords/copedent"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = beep.SampleRate(44100)

func drain(s beep.Streamer) (count int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		count += n
		if !ok {
			return count, peak
		}
	}
}

func TestSineLengthAndGain(t *testing.T) {
	count, peak := drain(Sine(440, 100*time.Millisecond, rate))
	assert.Equal(t, rate.N(100*time.Millisecond), count)
	assert.LessOrEqual(t, peak, startGain)
	assert.Greater(t, peak, 0.1)
}

func TestSineDecays(t *testing.T) {
	s := Sine(440, time.Second, rate)
	buf := make([][2]float64, rate.N(time.Second))
	n, _ := s.Stream(buf)
	require.Equal(t, len(buf), n)

	peakOf := func(part [][2]float64) float64 {
		var p float64
		for _, v := range part {
			p = math.Max(p, math.Abs(v[0]))
		}
		return p
	}
	head := peakOf(buf[:4410])
	tail := peakOf(buf[len(buf)-4410:])
	assert.Greater(t, head, tail*10)
	assert.Equal(t, buf[0][0], buf[0][1])
}

func TestNote(t *testing.T) {
	_, err := Note("A4", time.Millisecond, rate)
	assert.NoError(t, err)
	_, err = Note("H4", time.Millisecond, rate)
	assert.ErrorIs(t, err, note.ErrInvalidNoteName)
}

func TestVoicingMix(t *testing.T) {
	v := model.Voicing{Sounding: map[copedent.StringID]model.SoundingNote{
		4: {Pitch: note.MustParsePitch("E4")},
		5: {Pitch: note.MustParsePitch("B3")},
		6: {Pitch: note.MustParsePitch("G#3")},
	}}
	strum := 10 * time.Millisecond
	count, peak := drain(Voicing(v, 100*time.Millisecond, strum, rate))

	assert.Equal(t, rate.N(2*strum)+rate.N(100*time.Millisecond), count)
	assert.LessOrEqual(t, peak, startGain)

	empty, _ := drain(Voicing(model.Voicing{}, time.Second, strum, rate))
	assert.Equal(t, 0, empty)
}

func TestWriteWAVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a4.wav")
	s, err := Note("A4", 50*time.Millisecond, rate)
	require.NoError(t, err)
	require.NoError(t, WriteWAVFile(path, s, rate))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, format, err := wav.Decode(f)
	require.NoError(t, err)
	defer decoded.Close()

	assert.Equal(t, rate, format.SampleRate)
	assert.Equal(t, 2, format.NumChannels)
	assert.Equal(t, rate.N(50*time.Millisecond), decoded.Len())
}
