package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A#4", "Bb4"},
		{"C#3", "Db3"},
		{"D#5", "Eb5"},
		{"F#4", "Gb4"},
		{"G#2", "Ab2"},
		{"E#5", "F5"},
		{"B#3", "C3"},
		{"C4", "C4"},
		{"Bb4", "Bb4"},
		{"G7", "G7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, flatten(tt.in), tt.in)
	}
}

func TestTritoneNames(t *testing.T) {
	// The table prefers flat spellings where one exists.
	assert.Equal(t, "Gb", tritoneNames[0], "tritone of C")
	assert.Equal(t, "G", tritoneNames[1])
	assert.Equal(t, "C", tritoneNames[6])
	assert.Equal(t, "F", tritoneNames[11])

	for pc, name := range tritoneNames {
		assert.NotEmpty(t, name, "pitch class %d", pc)
	}
}
