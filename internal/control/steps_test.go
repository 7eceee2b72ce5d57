package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStep(t *testing.T) {
	cases := map[float64]float64{
		0:    1,
		0.3:  1,
		1:    2,
		2:    5,
		3:    5,
		5:    10,
		7:    10,
		10:   20,
		1000: 2000,
		5000: 10000,
	}
	for in, want := range cases {
		assert.InDelta(t, want, nextStep(in), 1e-9, "nextStep(%v)", in)
	}
}

func TestPrevStep(t *testing.T) {
	cases := []struct {
		in, floor, want float64
	}{
		{in: 100, floor: 1, want: 50},
		{in: 50, floor: 1, want: 20},
		{in: 20, floor: 1, want: 10},
		{in: 30, floor: 1, want: 20},
		{in: 2, floor: 1, want: 1},
		{in: 1, floor: 1, want: 1},
		{in: 2000, floor: 1000, want: 1000},
		{in: 1500, floor: 1000, want: 1000},
		{in: 1000, floor: 1000, want: 1000},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, prevStep(tc.in, tc.floor), 1e-9, "prevStep(%v, %v)", tc.in, tc.floor)
	}
}
