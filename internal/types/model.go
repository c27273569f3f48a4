package types

import "strings"

type Model int // The Model used in emulation.

const (
	DMG Model = iota // DMG - original Game Boy
	CGB              // CGB - Game Boy Colour
)

var modelNames = map[Model]string{
	DMG: "DMG",
	CGB: "CGB",
}

// String returns the short name of the Model.
func (m Model) String() string {
	if n, ok := modelNames[m]; ok {
		return n
	}
	return "Unknown"
}

// StringToModel converts a string to a Model. Unknown
// names fall back to DMG.
func StringToModel(s string) Model {
	for m, n := range modelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}
	return DMG
}
