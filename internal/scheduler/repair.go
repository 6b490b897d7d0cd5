package scheduler

import (
	"slices"
)

// Repair 把任意候选日列表规整为合法的连续两天。规则如下：
//   - 空列表表示取消该团队的到场安排，原样返回
//   - 只有一天时向后补一天，越界则向前补一天
//   - 两天及以上时先排序，若最小的两天已经相邻则保留这两天、丢弃其余
//   - 否则以调用方给出的最后一天为锚点，按单天的规则重新补齐
//
// 对已经合法的两天重复调用会原样返回，即 Repair 是幂等的
func Repair(candidateDays []int32, maxDays int32) ([]int32, error) {
	if maxDays < 2 {
		return nil, ErrInvalidAxis
	}

	for _, day := range candidateDays {
		if day < 0 || day >= maxDays {
			return nil, ErrDayOutOfRange
		}
	}

	if len(candidateDays) == 0 {
		return []int32{}, nil
	}

	sorted := slices.Clone(candidateDays)
	slices.Sort(sorted)

	if len(sorted) == 1 {
		return anchorPair(sorted[0], maxDays), nil
	}

	if sorted[1]-sorted[0] == 1 {
		return []int32{sorted[0], sorted[1]}, nil
	}

	// 排序后不相邻，以调用方最后给出的那天为锚点重排
	return anchorPair(candidateDays[len(candidateDays)-1], maxDays), nil
}

// anchorPair 以 day 为锚点向后补一天，周尾放不下时向前补一天
func anchorPair(day int32, maxDays int32) []int32 {
	if day+1 < maxDays {
		return []int32{day, day + 1}
	}
	return []int32{day - 1, day}
}
