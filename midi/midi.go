package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/steelchords/constants"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/note"
	"github.com/jsphweid/steelchords/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const velocity = 100

// Chord is a set of keys struck at the same tick.
type Chord struct {
	Tick uint64
	Keys []uint8
}

func Label(sel model.Selection) string {
	return fmt.Sprintf("%s %s fret %d %s", sel.Root, sel.ChordType, sel.Voicing.Fret, sel.Voicing.Combination)
}

// Keys returns the sounding notes of v as midi keys, lowest string number first.
func Keys(v model.Voicing) []uint8 {
	var keys []uint8
	for _, s := range util.SortedKeys(v.Sounding) {
		keys = append(keys, note.MIDINumber(v.Sounding[s].Pitch))
	}
	return keys
}

// Build lays the selections out one per bar on a single track.
func Build(sels []model.Selection, bpm float64) (*smf.SMF, error) {
	clock := smf.MetricTicks(constants.TicksPerQuarter)
	bar := clock.Ticks4th() * 4

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("steelchords"))
	tr.Add(0, smf.MetaTempo(bpm))
	tr.Add(0, smf.MetaMeter(4, 4))

	var rest uint32
	for _, sel := range sels {
		tr.Add(rest, smf.MetaMarker(Label(sel)))
		keys := Keys(sel.Voicing)
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(0, k, velocity))
		}
		for i, k := range keys {
			var delta uint32
			if i == 0 {
				delta = bar
			}
			tr.Add(delta, midi.NoteOff(0, k))
		}
		rest = 0
		if len(keys) == 0 {
			rest = bar
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("adding track: %w", err)
	}
	return s, nil
}

func Write(w io.Writer, sels []model.Selection, bpm float64) error {
	s, err := Build(sels, bpm)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteFile(path string, sels []model.Selection, bpm float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, sels, bpm)
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// Chords groups every track's note-ons by absolute tick.
func Chords(s *smf.SMF) []Chord {
	byTick := make(map[uint64][]uint8)
	for _, track := range s.Tracks {
		var absTicks uint64
		for _, ev := range track {
			absTicks += uint64(ev.Delta)
			var ch, key, vel uint8
			if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
				byTick[absTicks] = append(byTick[absTicks], key)
			}
		}
	}

	var res []Chord
	for _, tick := range util.SortedKeys(byTick) {
		keys := byTick[tick]
		sort.Slice(keys, func(i, j int) bool {
			return keys[i] < keys[j]
		})
		res = append(res, Chord{Tick: tick, Keys: keys})
	}
	return res
}
