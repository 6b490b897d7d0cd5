package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepair(t *testing.T) {
	testCases := []struct {
		name          string
		candidateDays []int32
		maxDays       int32
		expected      []int32
	}{
		{
			name:          "单天向后补齐",
			candidateDays: []int32{0},
			maxDays:       5,
			expected:      []int32{0, 1},
		},
		{
			name:          "周尾的单天向前补齐",
			candidateDays: []int32{3},
			maxDays:       4,
			expected:      []int32{2, 3},
		},
		{
			name:          "五天轴周尾的单天向前补齐",
			candidateDays: []int32{4},
			maxDays:       5,
			expected:      []int32{3, 4},
		},
		{
			name:          "已经合法的两天原样保留",
			candidateDays: []int32{1, 2},
			maxDays:       5,
			expected:      []int32{1, 2},
		},
		{
			name:          "乱序的合法两天排序后保留",
			candidateDays: []int32{2, 1},
			maxDays:       5,
			expected:      []int32{1, 2},
		},
		{
			name:          "最小的两天相邻时丢弃多余的天",
			candidateDays: []int32{0, 1, 3},
			maxDays:       5,
			expected:      []int32{0, 1},
		},
		{
			name:          "不相邻时以最后给出的那天为锚点",
			candidateDays: []int32{3, 0},
			maxDays:       5,
			expected:      []int32{0, 1},
		},
		{
			name:          "不相邻且锚点在周尾时向前补齐",
			candidateDays: []int32{0, 3},
			maxDays:       4,
			expected:      []int32{2, 3},
		},
		{
			name:          "空列表表示取消安排",
			candidateDays: []int32{},
			maxDays:       5,
			expected:      []int32{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repaired, err := Repair(tc.candidateDays, tc.maxDays)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, repaired)
		})
	}
}

func TestRepairIdempotence(t *testing.T) {
	// 对任意候选日列表，repair(repair(x)) == repair(x)
	inputs := [][]int32{
		{0}, {1}, {2}, {3}, {4},
		{0, 1}, {1, 2}, {3, 4},
		{0, 2}, {4, 0}, {0, 2, 4}, {1, 3, 4, 0},
	}

	for _, input := range inputs {
		once, err := Repair(input, 5)
		require.NoError(t, err)

		twice, err := Repair(once, 5)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "输入 %v 的修复结果不幂等", input)
	}
}

func TestRepairInvariant(t *testing.T) {
	// 任何非空输入的修复结果都恰好是相邻的两天
	inputs := [][]int32{
		{0}, {3}, {4}, {0, 4}, {2, 0, 3}, {4, 4}, {1, 1},
	}

	for _, input := range inputs {
		repaired, err := Repair(input, 5)
		require.NoError(t, err)
		require.Len(t, repaired, 2)
		assert.Equal(t, repaired[0]+1, repaired[1])
		assert.GreaterOrEqual(t, repaired[0], int32(0))
		assert.Less(t, repaired[1], int32(5))
	}
}

func TestRepairErrors(t *testing.T) {
	t.Run("工作日轴非法", func(t *testing.T) {
		_, err := Repair([]int32{0}, 1)
		assert.ErrorIs(t, err, ErrInvalidAxis)
	})

	t.Run("日期下标越界", func(t *testing.T) {
		_, err := Repair([]int32{5}, 5)
		assert.ErrorIs(t, err, ErrDayOutOfRange)

		_, err = Repair([]int32{-1}, 5)
		assert.ErrorIs(t, err, ErrDayOutOfRange)

		_, err = Repair([]int32{4}, 4)
		assert.ErrorIs(t, err, ErrDayOutOfRange)
	})
}
