package copedent

import "github.com/jsphweid/steelchords/note"

// E9 universal 12-string setup.
func defaultTuning() Tuning {
	names := []string{"F#4", "D#4", "G#4", "E4", "B3", "G#3", "F#3", "E3", "B2", "G#2", "E2", "B1"}
	t := make(Tuning, len(names))
	for i, n := range names {
		t[StringID(i+1)] = note.MustParsePitch(n)
	}
	return t
}

func defaultControls() []Control {
	return []Control{
		{Name: "A", Kind: Pedal, Description: "Raises strings 5 and 9 a whole step",
			Changes: []Change{{5, 2}, {9, 2}}},
		{Name: "B", Kind: Pedal, Description: "Raises strings 3, 6, and 10 a half step",
			Changes: []Change{{3, 1}, {6, 1}, {10, 1}}},
		{Name: "C", Kind: Pedal, Description: "Raises strings 4 and 5 a whole step",
			Changes: []Change{{4, 2}, {5, 2}}},
		{Name: "D", Kind: Pedal, Description: "Raises string 9 a half step, lowers 11 a half step, lowers 12 three half steps",
			Changes: []Change{{9, 1}, {11, -1}, {12, -3}}},
		{Name: "E", Kind: Pedal, Description: "Lowers string 7 a half step, raises 11 a half step, raises 12 two half steps",
			Changes: []Change{{7, -1}, {11, 1}, {12, 2}}},
		{Name: "F", Kind: Pedal, Description: "Raises string 4 a half step, lowers string 8 two half steps",
			Changes: []Change{{4, 1}, {8, -2}}},
		{Name: "G", Kind: Pedal, Description: "Raises strings 5 and 6 a whole step",
			Changes: []Change{{5, 2}, {6, 2}}},
		{Name: "LKL", Kind: Lever, Knee: "L", Description: "Raises strings 4 and 8 a half step",
			Changes: []Change{{4, 1}, {8, 1}}},
		{Name: "LKR", Kind: Lever, Knee: "L", Description: "Lowers strings 4 and 8 a half step",
			Changes: []Change{{4, -1}, {8, -1}}},
		{Name: "V", Kind: Lever, Description: "Lowers string 5 a half step",
			Changes: []Change{{5, -1}}},
		{Name: "RKL", Kind: Lever, Knee: "R", Description: "Raises strings 1 and 7 a half step",
			Changes: []Change{{1, 1}, {7, 1}}},
		{Name: "RKR", Kind: Lever, Knee: "R", Description: "Lowers string 2 a half step, raises string 9 three half steps",
			Changes: []Change{{2, -1}, {9, 3}}},
	}
}

func defaultOverrides() []Override {
	return []Override{
		{String: 4, Controls: []string{"C", "LKL"}, Result: 2, Note: "LKL has no effect, C takes precedence"},
		{String: 4, Controls: []string{"C", "LKR"}, Result: 1, Note: "Additive: up 2 (C) + down 1 (LKR) = up 1"},
		{String: 4, Controls: []string{"F", "LKL"}, Result: 1, Note: "LKL has no effect, F takes precedence"},
		{String: 4, Controls: []string{"F", "LKR"}, Result: 0, Note: "Additive: up 1 (F) + down 1 (LKR) = 0 (no change)"},

		{String: 5, Controls: []string{"A", "V"}, Result: 1, Note: "Additive: up 2 (A) + down 1 (V) = up 1"},
		{String: 5, Controls: []string{"C", "V"}, Result: 1, Note: "Additive: up 2 (C) + down 1 (V) = up 1"},
		{String: 5, Controls: []string{"G", "V"}, Result: 1, Note: "Additive: up 2 (G) + down 1 (V) = up 1"},

		{String: 7, Controls: []string{"E", "RKL"}, Result: 0, Note: "Additive: down 1 (E) + up 1 (RKL) = 0 (no change)"},

		{String: 8, Controls: []string{"F", "LKL"}, Result: -1, Note: "Additive: down 2 (F) + up 1 (LKL) = down 1"},
		{String: 8, Controls: []string{"F", "LKR"}, Result: -2, Note: "LKR has no effect, F takes precedence"},

		{String: 9, Controls: []string{"A", "RKR"}, Result: 3, Note: "A has no effect, RKR takes precedence"},
		{String: 9, Controls: []string{"D", "RKR"}, Result: 3, Note: "D has no effect, RKR takes precedence"},

		{String: 11, Controls: []string{"D", "E"}, Result: 0, Note: "Additive: down 1 (D) + up 1 (E) = 0 (no change)"},
		{String: 12, Controls: []string{"D", "E"}, Result: -1, Note: "Additive: down 3 (D) + up 2 (E) = down 1"},
	}
}

// Default returns the 12-string E9 universal copedent. Pedals A through G sit
// left to right in that order.
func Default() *Copedent {
	c, err := New("E9 Universal", defaultTuning(), defaultControls(),
		[]string{"A", "B", "C", "D", "E", "F", "G"}, defaultOverrides())
	if err != nil {
		panic("default copedent is inconsistent: " + err.Error())
	}
	return c
}
