package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		value, lo, hi float64
		want          float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -3, 0, 1, 0},
		{"above", 7, 0, 1, 1},
		{"nan", math.NaN(), 0, 1, 0},
		{"positive infinity", math.Inf(1), 0, 1, 1},
		{"negative infinity", math.Inf(-1), 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.value, tt.lo, tt.hi))
		})
	}
}

func TestFloatEqual(t *testing.T) {
	assert.True(t, FloatEqual(0.1+0.2, 0.3))
	assert.False(t, FloatEqual(0.3, 0.31))
}
