package model

type SearchRequestBody struct {
	Root      string `json:"root" validate:"required,oneof=C C# D D# E F F# G G# A A# B"`
	ChordType string `json:"chordType" validate:"required"`
	MaxFret   *int   `json:"maxFret" validate:"omitempty,min=0,max=24"`
}

type SearchResponse struct {
	ID        string    `json:"id"`
	Root      string    `json:"root"`
	ChordType string    `json:"chordType"`
	Count     int       `json:"count"`
	Voicings  []Voicing `json:"voicings"`
}

type FrequencyResponse struct {
	Note      string  `json:"note"`
	Frequency float64 `json:"frequency"`
}

type CombinationsResponse struct {
	Copedent     string     `json:"copedent"`
	Count        int        `json:"count"`
	Combinations [][]string `json:"combinations"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
