package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxDays(t *testing.T) {
	assert.Equal(t, int32(5), MaxDays(true))
	assert.Equal(t, int32(4), MaxDays(false))
}

func TestAxis(t *testing.T) {
	assert.Equal(t, []int32{0, 1, 2, 3}, Axis(4))
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, Axis(5))
}

func TestConsecutivePairs(t *testing.T) {
	t.Run("四天的工作日轴有三个组合", func(t *testing.T) {
		pairs, err := ConsecutivePairs(4)
		require.NoError(t, err)
		assert.Equal(t, []DayPair{{0, 1}, {1, 2}, {2, 3}}, pairs)
	})

	t.Run("五天的工作日轴有四个组合", func(t *testing.T) {
		pairs, err := ConsecutivePairs(5)
		require.NoError(t, err)
		assert.Len(t, pairs, 4)
		for _, pair := range pairs {
			assert.Equal(t, pair.First+1, pair.Second)
		}
	})

	t.Run("少于两天的工作日轴非法", func(t *testing.T) {
		for _, maxDays := range []int32{1, 0, -1} {
			_, err := ConsecutivePairs(maxDays)
			assert.ErrorIs(t, err, ErrInvalidAxis)
		}
	})
}

func TestDayPair(t *testing.T) {
	pair := DayPair{First: 2, Second: 3}

	assert.True(t, pair.Contains(2))
	assert.True(t, pair.Contains(3))
	assert.False(t, pair.Contains(1))
	assert.Equal(t, []int32{2, 3}, pair.Days())
}
