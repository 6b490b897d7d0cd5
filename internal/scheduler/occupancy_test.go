package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

func TestCalculateDayOccupancy(t *testing.T) {
	testCases := []struct {
		name          string
		capacities    []int32
		targetPercent int32
		totalChairs   int32
		expected      DayOccupancy
	}{
		{
			name:          "超过总座位数时占用率超过 100%",
			capacities:    []int32{5, 4, 3},
			targetPercent: 100,
			totalChairs:   10,
			expected:      DayOccupancy{DayIndex: 2, OccupiedSeats: 12, TargetPercent: 100, ActualPercent: 120, OverCapacity: true},
		},
		{
			name:          "未达到目标占用率",
			capacities:    []int32{2, 3},
			targetPercent: 80,
			totalChairs:   10,
			expected:      DayOccupancy{DayIndex: 2, OccupiedSeats: 5, TargetPercent: 80, ActualPercent: 50, OverCapacity: false},
		},
		{
			name:          "占用率四舍五入",
			capacities:    []int32{1},
			targetPercent: 100,
			totalChairs:   3,
			expected:      DayOccupancy{DayIndex: 2, OccupiedSeats: 1, TargetPercent: 100, ActualPercent: 33, OverCapacity: false},
		},
		{
			name:          "总座位数为 0 时占用率恒为 0",
			capacities:    []int32{5, 5},
			targetPercent: 100,
			totalChairs:   0,
			expected:      DayOccupancy{DayIndex: 2, OccupiedSeats: 10, TargetPercent: 100, ActualPercent: 0, OverCapacity: false},
		},
		{
			name:          "没有团队到场",
			capacities:    nil,
			targetPercent: 100,
			totalChairs:   10,
			expected:      DayOccupancy{DayIndex: 2, OccupiedSeats: 0, TargetPercent: 100, ActualPercent: 0, OverCapacity: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			teams := make([]*domain.Team, 0, len(tc.capacities))
			for i, capacity := range tc.capacities {
				teams = append(teams, &domain.Team{ID: int64(i + 1), Capacity: capacity})
			}

			result := CalculateDayOccupancy(2, teams, tc.targetPercent, tc.totalChairs)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestOccupancyReport(t *testing.T) {
	teams := []*domain.Team{
		{ID: 1, Capacity: 6},
		{ID: 2, Capacity: 6},
	}
	assignment := AssignmentFromSchedule([]domain.TeamSchedule{
		{TeamID: 1, Days: []int32{0, 1}},
		{TeamID: 2, Days: []int32{1, 2}},
	})
	dailySettings := []*domain.DailySetting{
		{DayIndex: 1, OccupancyPercentage: 80},
	}

	report := OccupancyReport(assignment, teams, dailySettings, 10, 4)
	require.Len(t, report, 4)

	// 第 0 天只有团队 1，目标占用率取默认值 100
	assert.Equal(t, int32(6), report[0].OccupiedSeats)
	assert.Equal(t, DefaultTargetPercent, report[0].TargetPercent)
	assert.Equal(t, int32(60), report[0].ActualPercent)
	assert.False(t, report[0].OverCapacity)

	// 第 1 天两个团队都在，单独设置的目标占用率 80 被超过
	assert.Equal(t, int32(12), report[1].OccupiedSeats)
	assert.Equal(t, int32(80), report[1].TargetPercent)
	assert.Equal(t, int32(120), report[1].ActualPercent)
	assert.True(t, report[1].OverCapacity)

	// 第 3 天没有团队
	assert.Equal(t, int32(0), report[3].OccupiedSeats)
	assert.Equal(t, int32(0), report[3].ActualPercent)
}

func TestOccupancyReportZeroChairs(t *testing.T) {
	// 总座位数为 0 时整周都不应出现除零
	teams := []*domain.Team{{ID: 1, Capacity: 8}}
	assignment := AssignmentFromSchedule([]domain.TeamSchedule{
		{TeamID: 1, Days: []int32{0, 1}},
	})

	report := OccupancyReport(assignment, teams, nil, 0, 5)
	require.Len(t, report, 5)
	for _, day := range report {
		assert.Equal(t, int32(0), day.ActualPercent)
		assert.False(t, day.OverCapacity)
	}
}
