package fake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateHandle(t *testing.T) {
	t.Parallel()

	g := New(42)
	for i := 0; i < 20; i++ {
		handle := g.GenerateHandle()
		require.NotEmpty(t, handle)
		assert.Equal(t, strings.ToLower(handle), handle)
	}
}

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a, b := New(7), New(7)
	assert.Equal(t, a.GenerateHandle(), b.GenerateHandle())
	assert.Equal(t, a.Inputs(3), b.Inputs(3))
}

func TestGenerator_Inputs(t *testing.T) {
	t.Parallel()

	inputs := New(1).Inputs(25)
	require.Len(t, inputs, 25)
	for _, in := range inputs {
		require.NotNil(t, in.Salary)
		assert.NotEmpty(t, in.Name)
		assert.GreaterOrEqual(t, *in.Salary, minSalary)
		assert.LessOrEqual(t, *in.Salary, maxSalary)
		assert.GreaterOrEqual(t, in.Age, minAge)
		assert.LessOrEqual(t, in.Age, maxAge)
	}

	assert.Empty(t, New(1).Inputs(0))
	assert.Empty(t, New(1).Inputs(-3))
}
