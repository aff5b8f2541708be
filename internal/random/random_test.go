package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollerIsReproducibleWithSeed(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 20; i++ {
		require.Equal(t, a.Intn(100), b.Intn(100))
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestBetween(t *testing.T) {
	r := New(&Config{Seed: 7})
	for i := 0; i < 100; i++ {
		v := Between(r, 3, 5)
		assert.GreaterOrEqual(t, v, 3.0)
		assert.Less(t, v, 5.0)
	}

	assert.Equal(t, 2.0, Between(r, 2, 2))
}

func TestPick(t *testing.T) {
	r := New(&Config{Seed: 1})

	_, ok := Pick[string](r, nil)
	assert.False(t, ok)

	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		got, ok := Pick(r, items)
		require.True(t, ok)
		assert.Contains(t, items, got)
	}
}
