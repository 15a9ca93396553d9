package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministic(t *testing.T) {
	a, b := New(3), New(3)
	for i := 0; i < 100; i++ {
		x := float32(i) * 0.37
		assert.Equal(t, a.At2(x, x*0.5), b.At2(x, x*0.5))
		assert.Equal(t, a.At3(x, 1.3, -x), b.At3(x, 1.3, -x))
	}
}

func TestLattice(t *testing.T) {
	p := New(1)
	assert.InDelta(t, 0, p.At2(3, 4), 1e-6)
	assert.InDelta(t, 0, p.At3(10, 11, 12), 1e-6)
}

func TestRange(t *testing.T) {
	p := New(1)
	varied := false
	first := p.At3(0.5, 0.5, 0.5)
	for i := 0; i < 1000; i++ {
		x := float32(i) * 0.173
		v := p.At3(x, x*0.7, x*1.3)
		assert.True(t, v >= -1.5 && v <= 1.5, "out of range %v", v)
		if v != first {
			varied = true
		}
	}
	assert.True(t, varied)
}
