package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermCount(t *testing.T) {
	assert.Equal(t, int64(333), TermCount(3, 1000))
	assert.Equal(t, int64(199), TermCount(5, 1000))
	assert.Equal(t, int64(66), TermCount(15, 1000))
	assert.Equal(t, int64(0), TermCount(3, 1))
	assert.Equal(t, int64(0), TermCount(3, 0))
	assert.Equal(t, int64(0), TermCount(0, 1000))
	assert.Equal(t, int64(0), TermCount(-3, 1000))
}

func TestSumOfMultiples_Default(t *testing.T) {
	got, err := SumOfMultiples([]int64{3, 5}, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(233168), got)

	loop, err := SumOfMultiplesLoop([]int64{3, 5}, 1000)
	require.NoError(t, err)
	assert.Equal(t, got, loop)

	exact, err := SumOfMultiplesWhole([]int64{3, 5}, 1000)
	require.NoError(t, err)
	assert.Equal(t, "233168", exact.String())
}

func TestSumOfMultiples_AgreesWithLoop(t *testing.T) {
	factorSets := [][]int64{
		{3, 5},
		{4, 6},
		{2, 3, 5},
		{7},
		{6, 10, 15},
		{3, 3},
		{1000},
		{1},
	}
	for _, factors := range factorSets {
		for bound := int64(0); bound <= 300; bound++ {
			closed, err := SumOfMultiples(factors, bound)
			require.NoError(t, err)
			loop, err := SumOfMultiplesLoop(factors, bound)
			require.NoError(t, err)
			if closed != loop {
				t.Fatalf("factors=%v bound=%d: closed form %d, loop %d", factors, bound, closed, loop)
			}
		}
	}
}

func TestSumOfMultiples_NonCoprimeFactors(t *testing.T) {
	// overlap of 4 and 6 is 12, not 24
	got, err := SumOfMultiples([]int64{4, 6}, 25)
	require.NoError(t, err)
	// 4 6 8 12 16 18 20 24
	assert.Equal(t, int64(108), got)
}

func TestSumOfMultiples_EmptyFactors(t *testing.T) {
	got, err := SumOfMultiples(nil, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestSumOfMultiples_InvalidInput(t *testing.T) {
	_, err := SumOfMultiples([]int64{3, 0}, 1000)
	assert.ErrorIs(t, err, ErrInvalidFactor)
	_, err = SumOfMultiplesLoop([]int64{-3}, 1000)
	assert.ErrorIs(t, err, ErrInvalidFactor)
	_, err = SumOfMultiplesWhole([]int64{3}, -1)
	assert.ErrorIs(t, err, ErrNegativeInput)
}

func TestSumOfMultiples_ExactBeyondInt64(t *testing.T) {
	_, err := SumOfMultiples([]int64{1}, 1<<40)
	assert.ErrorIs(t, err, ErrOverflow)

	got, err := SumOfMultiplesWhole([]int64{1}, 1<<40)
	require.NoError(t, err)
	// (2^40 - 1) * 2^40 / 2
	assert.Equal(t, "604462909806764831539200", got.String())
}

func TestMultiplesSentence(t *testing.T) {
	assert.Equal(t, "The sum of the multiples of 3 and 5 below 1000 is 233168.",
		MultiplesSentence([]int64{3, 5}, 1000, "233168"))
	assert.Equal(t, "The sum of the multiples of 7 below 50 is 196.",
		MultiplesSentence([]int64{7}, 50, "196"))
	assert.Equal(t, "The sum of the multiples of 2, 3 and 5 below 10 is 37.",
		MultiplesSentence([]int64{2, 3, 5}, 10, "37"))
}
