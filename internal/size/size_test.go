package size

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddOverflowSafe(t *testing.T) {
	for _, tc := range []struct {
		a, b int
		want int
		ok   bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{math.MaxInt, 0, math.MaxInt, true},
		{math.MaxInt, 1, 0, false},
		{math.MinInt, -1, 0, false},
		{-5, 3, -2, true},
	} {
		got, ok := AddOverflowSafe(tc.a, tc.b)
		assert.Equal(t, tc.ok, ok, "AddOverflowSafe(%d, %d)", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "AddOverflowSafe(%d, %d)", tc.a, tc.b)
	}
}

func TestMulOverflowSafe(t *testing.T) {
	for _, tc := range []struct {
		a, b int
		want int
		ok   bool
	}{
		{0, math.MaxInt, 0, true},
		{3, 8, 24, true},
		{math.MaxInt, 1, math.MaxInt, true},
		{math.MaxInt / 2, 3, 0, false},
		{math.MaxInt / 4, 8, 0, false},
		{-2, 4, -8, true},
		{math.MinInt, 2, 0, false},
	} {
		got, ok := MulOverflowSafe(tc.a, tc.b)
		assert.Equal(t, tc.ok, ok, "MulOverflowSafe(%d, %d)", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "MulOverflowSafe(%d, %d)", tc.a, tc.b)
	}
}
