package scheduler

import (
	"errors"
)

// 工作日名称，下标 0 恒为周一
var WeekdayNames = []string{"周一", "周二", "周三", "周四", "周五"}

// 工作日轴上至少要有两天才放得下连续两天的到场安排
var ErrInvalidAxis = errors.New("工作日数量必须至少为 2 天")

var ErrDayOutOfRange = errors.New("日期下标超出工作日范围")

// MaxDays 根据是否包含周五返回工作日数量
func MaxDays(includeFriday bool) int32 {
	if includeFriday {
		return 5
	}
	return 4
}

// Axis 返回 [0, maxDays) 的日期下标序列
func Axis(maxDays int32) []int32 {
	days := make([]int32, 0, maxDays)
	for d := int32(0); d < maxDays; d++ {
		days = append(days, d)
	}
	return days
}

// DayPair 表示相邻的两天，Second 恒等于 First+1
type DayPair struct {
	First  int32
	Second int32
}

func (p DayPair) Contains(day int32) bool {
	return day == p.First || day == p.Second
}

func (p DayPair) Days() []int32 {
	return []int32{p.First, p.Second}
}

// ConsecutivePairs 返回工作日轴上所有相邻两天的组合，共 maxDays-1 个
func ConsecutivePairs(maxDays int32) ([]DayPair, error) {
	if maxDays < 2 {
		return nil, ErrInvalidAxis
	}

	pairs := make([]DayPair, 0, maxDays-1)
	for d := int32(0); d < maxDays-1; d++ {
		pairs = append(pairs, DayPair{First: d, Second: d + 1})
	}
	return pairs, nil
}
