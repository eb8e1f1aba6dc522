package note

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var ErrInvalidNoteName = errors.New("invalid note name")

// Names is the canonical spelling of every semitone class, sharps only.
var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var nameToClass = map[string]int{
	"C": 0, "C#": 1, "D": 2, "D#": 3, "E": 4, "F": 5,
	"F#": 6, "G": 7, "G#": 8, "A": 9, "A#": 10, "B": 11,
}

var intervalNames = [12]string{"R", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

var pitchPattern = regexp.MustCompile(`^([A-G]#?)(-?\d+)$`)

// Pitch is a semitone class in [0,11] plus the octave it sits in.
type Pitch struct {
	Class  int `json:"class"`
	Octave int `json:"octave"`
}

func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Name(), p.Octave)
}

func (p Pitch) Name() string {
	return Names[p.Class]
}

// Abs is the semitone count from C0.
func (p Pitch) Abs() int {
	return p.Class + 12*p.Octave
}

func FromAbs(abs int) Pitch {
	return Pitch{Class: mod(abs, 12), Octave: floorDiv(abs, 12)}
}

// PitchAt shifts base by offset semitones, carrying into the octave.
func PitchAt(base Pitch, offset int) Pitch {
	return FromAbs(base.Abs() + offset)
}

func NameToClass(name string) (int, error) {
	class, ok := nameToClass[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	return class, nil
}

func ClassToName(class int) string {
	return Names[mod(class, 12)]
}

// ParsePitch reads a note name followed by an octave, e.g. "F#4".
func ParsePitch(s string) (Pitch, error) {
	m := pitchPattern.FindStringSubmatch(s)
	if m == nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	class, err := NameToClass(m[1])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(m[2])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	return Pitch{Class: class, Octave: octave}, nil
}

func MustParsePitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}

var a4 = Pitch{Class: 9, Octave: 4}

// Frequency in Hz, twelve-tone equal temperament with A4 = 440.
func Frequency(p Pitch) float64 {
	return 440 * math.Pow(2, float64(p.Abs()-a4.Abs())/12)
}

func NameToFrequency(s string) (float64, error) {
	p, err := ParsePitch(s)
	if err != nil {
		return 0, err
	}
	return Frequency(p), nil
}

// MIDINumber maps C4 to 60.
func MIDINumber(p Pitch) uint8 {
	return uint8(p.Abs() + 12)
}

// IntervalName gives the short scale-degree label for a semitone offset from the root.
func IntervalName(degree int) string {
	return intervalNames[mod(degree, 12)]
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
