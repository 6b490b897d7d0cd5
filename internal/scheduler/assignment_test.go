package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

func TestAssignmentFromRows(t *testing.T) {
	t.Run("按团队聚合并对天排序", func(t *testing.T) {
		rows := []*domain.ScheduleEntry{
			{TeamID: 2, DayIndex: 3},
			{TeamID: 1, DayIndex: 1},
			{TeamID: 2, DayIndex: 2},
			{TeamID: 1, DayIndex: 0},
		}

		assignment := AssignmentFromRows(rows)
		entries := assignment.Entries()
		require.Len(t, entries, 2)

		assert.Equal(t, []int32{0, 1}, assignment.DaysForTeam(1))
		assert.Equal(t, []int32{2, 3}, assignment.DaysForTeam(2))
	})

	t.Run("没有任何行时视图为空", func(t *testing.T) {
		assignment := AssignmentFromRows(nil)
		assert.Empty(t, assignment.Entries())
		assert.Empty(t, assignment.TeamsOnDay(0))
		assert.Empty(t, assignment.DaysForTeam(1))
	})
}

func TestTeamsOnDay(t *testing.T) {
	assignment := AssignmentFromSchedule([]domain.TeamSchedule{
		{TeamID: 3, Days: []int32{0, 1}},
		{TeamID: 1, Days: []int32{1, 2}},
		{TeamID: 2, Days: []int32{2, 3}},
	})

	assert.Equal(t, []int64{3}, assignment.TeamsOnDay(0))
	assert.Equal(t, []int64{1, 3}, assignment.TeamsOnDay(1))
	assert.Equal(t, []int64{1, 2}, assignment.TeamsOnDay(2))
	assert.Equal(t, []int64{2}, assignment.TeamsOnDay(3))
	assert.Empty(t, assignment.TeamsOnDay(4))
}

func TestDaysForTeam(t *testing.T) {
	assignment := AssignmentFromSchedule([]domain.TeamSchedule{
		{TeamID: 1, Days: []int32{1, 2}},
	})

	assert.Equal(t, []int32{1, 2}, assignment.DaysForTeam(1))

	// 未安排的团队返回空切片而不是 nil
	days := assignment.DaysForTeam(99)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestAssignmentRows(t *testing.T) {
	schedule := []domain.TeamSchedule{
		{TeamID: 1, Days: []int32{0, 1}},
		{TeamID: 2, Days: []int32{3, 4}},
	}

	rows := AssignmentFromSchedule(schedule).Rows()
	require.Len(t, rows, 4)

	// 展开再聚合应该回到同一个视图
	again := AssignmentFromRows(rows)
	assert.Equal(t, []int32{0, 1}, again.DaysForTeam(1))
	assert.Equal(t, []int32{3, 4}, again.DaysForTeam(2))
}
