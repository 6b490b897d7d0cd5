package domain

// ScheduleEntry 对应 schedules 表中的一行，每个团队的每个到场日各占一行
type ScheduleEntry struct {
	ID       int64 `json:"id"`
	TeamID   int64 `json:"teamId"`
	DayIndex int32 `json:"dayIndex"`
}

// TeamSchedule 是按团队聚合后的到场安排，Days 恒为升序的连续两天
type TeamSchedule struct {
	TeamID int64   `json:"teamId"`
	Days   []int32 `json:"days"`
}
