package numeric_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/bigo/numeric"
	"github.com/stretchr/testify/assert"
)

// TestFactorial checks the base cases and known values up to the uint64 limit.
func TestFactorial(t *testing.T) {
	want := map[int]uint64{
		0:  1,
		1:  1,
		2:  2,
		5:  120,
		10: 3628800,
		12: 479001600,
		20: 2432902008176640000,
	}
	for n, w := range want {
		assert.Equal(t, w, numeric.Factorial(n), "Factorial(%d)", n)
	}
}

// TestFactorial_Recurrence verifies n! == n * (n-1)! within uint64 range.
func TestFactorial_Recurrence(t *testing.T) {
	for n := 2; n <= 20; n++ {
		assert.Equal(t, uint64(n)*numeric.Factorial(n-1), numeric.Factorial(n), "n=%d", n)
	}
}

// TestFactorialBig agrees with Factorial where both are exact and
// stays exact beyond.
func TestFactorialBig(t *testing.T) {
	for n := 0; n <= 20; n++ {
		got := numeric.FactorialBig(n)
		assert.True(t, got.IsUint64(), "n=%d fits uint64", n)
		assert.Equal(t, numeric.Factorial(n), got.Uint64(), "n=%d", n)
	}

	want, ok := new(big.Int).SetString("51090942171709440000", 10) // 21!
	assert.True(t, ok)
	assert.Equal(t, 0, want.Cmp(numeric.FactorialBig(21)))
	assert.Equal(t, 0, big.NewInt(1).Cmp(numeric.FactorialBig(0)))
}
