package scheduler

import (
	"math"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

const DefaultTargetPercent int32 = 100

type DayOccupancy struct {
	DayIndex      int32 `json:"dayIndex"`
	OccupiedSeats int32 `json:"occupiedSeats"`
	TargetPercent int32 `json:"targetPercent"`
	ActualPercent int32 `json:"actualPercent"`
	OverCapacity  bool  `json:"overCapacity"`
}

// CalculateDayOccupancy 计算某一天的座位占用情况。
// totalChairs 为 0 时占用率恒为 0，不会出现除零
func CalculateDayOccupancy(dayIndex int32, teamsOnDay []*domain.Team, targetPercent int32, totalChairs int32) DayOccupancy {
	var occupied int32
	for _, team := range teamsOnDay {
		occupied += team.Capacity
	}

	var actual int32
	if totalChairs > 0 {
		actual = int32(math.Round(float64(occupied) / float64(totalChairs) * 100))
	}

	return DayOccupancy{
		DayIndex:      dayIndex,
		OccupiedSeats: occupied,
		TargetPercent: targetPercent,
		ActualPercent: actual,
		OverCapacity:  actual > targetPercent,
	}
}

// OccupancyReport 对整周的每一天计算占用情况，没有单独设置目标占用率的天取默认值
func OccupancyReport(assignment *Assignment, teams []*domain.Team, dailySettings []*domain.DailySetting, totalChairs int32, maxDays int32) []DayOccupancy {
	teamsByID := make(map[int64]*domain.Team, len(teams))
	for _, team := range teams {
		teamsByID[team.ID] = team
	}

	targets := make(map[int32]int32, len(dailySettings))
	for _, setting := range dailySettings {
		targets[setting.DayIndex] = setting.OccupancyPercentage
	}

	report := make([]DayOccupancy, 0, maxDays)
	for _, day := range Axis(maxDays) {
		teamsOnDay := make([]*domain.Team, 0)
		for _, teamID := range assignment.TeamsOnDay(day) {
			if team, exists := teamsByID[teamID]; exists {
				teamsOnDay = append(teamsOnDay, team)
			}
		}

		target := DefaultTargetPercent
		if t, exists := targets[day]; exists {
			target = t
		}

		report = append(report, CalculateDayOccupancy(day, teamsOnDay, target, totalChairs))
	}

	return report
}
