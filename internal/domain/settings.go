package domain

// AppSettings 全局只有一行
type AppSettings struct {
	ID            int64 `json:"-"`
	IncludeFriday bool  `json:"includeFriday"`
	TotalChairs   int32 `json:"totalChairs"`
}

type DailySetting struct {
	DayIndex            int32 `json:"dayIndex"`
	OccupancyPercentage int32 `json:"occupancyPercentage"`
}
