package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom_Float64(t *testing.T) {
	tests := []struct {
		name     string
		seed     int64
		expected []float64
	}{
		{
			name: "semente 42 reproduz a sequência de Park-Miller",
			seed: 42,
			expected: []float64{
				705893.0 / 2147483646.0,
				1126542222.0 / 2147483646.0,
				1579310008.0 / 2147483646.0,
			},
		},
		{
			name:     "semente zero é deslocada para 2^31-2",
			seed:     0,
			expected: []float64{2147466839.0 / 2147483646.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRandom(tt.seed)
			for _, want := range tt.expected {
				assert.Equal(t, want, r.Float64())
			}
		})
	}
}

func TestRandom_MesmaSementeMesmaSequencia(t *testing.T) {
	a := NewRandom(1234)
	b := NewRandom(1234)

	for i := 0; i < 1000; i++ {
		va := a.Float64()
		assert.Equal(t, va, b.Float64())
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestPick(t *testing.T) {
	r := NewRandom(7)
	values := []string{"a", "b", "c"}

	for i := 0; i < 100; i++ {
		assert.Contains(t, values, Pick(r, values))
	}

	assert.Equal(t, "", Pick(r, []string{}))
}
