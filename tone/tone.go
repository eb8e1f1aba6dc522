package tone

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/note"
	"github.com/jsphweid/steelchords/util"
)

const (
	startGain = 0.3
	endGain   = 0.001
)

// sine is a sine oscillator whose gain decays exponentially from startGain to
// endGain over its length.
type sine struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func Sine(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{freq: freq, length: rate.N(duration), rate: rate}
}

func (s *sine) gain() float64 {
	if s.length <= 1 {
		return startGain
	}
	t := float64(s.position) / float64(s.length-1)
	return startGain * math.Pow(endGain/startGain, t)
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		val := s.gain() * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// Note renders a note-with-octave such as "A4".
func Note(name string, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	freq, err := note.NameToFrequency(name)
	if err != nil {
		return nil, err
	}
	return Sine(freq, duration, rate), nil
}

// Voicing strums the sounding strings from the lowest (string 12) up,
// spacing each onset by strum and scaling the mix so it cannot clip.
func Voicing(v model.Voicing, duration, strum time.Duration, rate beep.SampleRate) beep.Streamer {
	ids := util.SortedKeys(v.Sounding)
	var voices []beep.Streamer
	for i := len(ids) - 1; i >= 0; i-- {
		offset := len(ids) - 1 - i
		freq := note.Frequency(v.Sounding[ids[i]].Pitch)
		voices = append(voices, beep.Seq(
			beep.Silence(rate.N(strum*time.Duration(offset))),
			Sine(freq, duration, rate),
		))
	}
	if len(voices) == 0 {
		return beep.Silence(0)
	}
	return &scaled{Streamer: beep.Mix(voices...), gain: 1 / float64(len(voices))}
}

type scaled struct {
	beep.Streamer
	gain float64
}

func (s *scaled) Stream(samples [][2]float64) (int, bool) {
	n, ok := s.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= s.gain
		samples[i][1] *= s.gain
	}
	return n, ok
}

func Format(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

func WriteWAV(w io.WriteSeeker, s beep.Streamer, rate beep.SampleRate) error {
	return wav.Encode(w, s, Format(rate))
}

func WriteWAVFile(path string, s beep.Streamer, rate beep.SampleRate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteWAV(f, s, rate)
}
