package constants

import "os"

func GetExportDir() string {
	path := os.Getenv("STEELCHORDS_EXPORT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

const NumStrings = 12

// frets 0 through 12 cover a full octave of bar positions
const DefaultMaxFret = 12

// highest fret on a standard steel neck
const MaxFret = 24

// non-triad chords need at least this many distinct chord tones
const DefaultMinDegrees = 2

const DefaultSampleRate = 44100

// 480 ticks per quarter note when writing midi
const TicksPerQuarter = 480
