package scheduler

import (
	"slices"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

// Assignment 是内存中的整周到场视图，由 schedules 表的行聚合而来。
// TeamsOnDay 和 DaysForTeam 都是每次读取时重新计算的纯投影，
// 团队和天数都只有几十个，没有必要维护增量索引
type Assignment struct {
	entries []domain.TeamSchedule
}

// AssignmentFromRows 把每团队每天一行的持久化格式聚合为每团队一组天的视图
func AssignmentFromRows(rows []*domain.ScheduleEntry) *Assignment {
	daysMap := make(map[int64][]int32)
	order := make([]int64, 0)

	for _, row := range rows {
		if _, exists := daysMap[row.TeamID]; !exists {
			order = append(order, row.TeamID)
		}
		daysMap[row.TeamID] = append(daysMap[row.TeamID], row.DayIndex)
	}

	entries := make([]domain.TeamSchedule, 0, len(order))
	for _, teamID := range order {
		days := daysMap[teamID]
		slices.Sort(days)
		entries = append(entries, domain.TeamSchedule{TeamID: teamID, Days: days})
	}

	return &Assignment{entries: entries}
}

func AssignmentFromSchedule(schedule []domain.TeamSchedule) *Assignment {
	return &Assignment{entries: schedule}
}

func (a *Assignment) Entries() []domain.TeamSchedule {
	return a.entries
}

// TeamsOnDay 返回指定日到场的所有团队 ID，按 ID 升序
func (a *Assignment) TeamsOnDay(dayIndex int32) []int64 {
	teamIDs := make([]int64, 0)
	for _, entry := range a.entries {
		if slices.Contains(entry.Days, dayIndex) {
			teamIDs = append(teamIDs, entry.TeamID)
		}
	}

	slices.Sort(teamIDs)
	return teamIDs
}

// DaysForTeam 返回指定团队的到场日，未安排时返回空切片
func (a *Assignment) DaysForTeam(teamID int64) []int32 {
	for _, entry := range a.entries {
		if entry.TeamID == teamID {
			return slices.Clone(entry.Days)
		}
	}
	return []int32{}
}

// Rows 把聚合视图展开回每团队每天一行的持久化格式
func (a *Assignment) Rows() []*domain.ScheduleEntry {
	rows := make([]*domain.ScheduleEntry, 0, len(a.entries)*2)
	for _, entry := range a.entries {
		for _, day := range entry.Days {
			rows = append(rows, &domain.ScheduleEntry{TeamID: entry.TeamID, DayIndex: day})
		}
	}
	return rows
}
