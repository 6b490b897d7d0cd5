package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

func makeTeams(n int) []*domain.Team {
	teams := make([]*domain.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, &domain.Team{ID: int64(i + 1), Name: fmt.Sprintf("团队%d", i+1)})
	}
	return teams
}

// keepOrder 用于在测试中固定团队的遍历顺序
func keepOrder(teams []*domain.Team) {}

func TestGenerateInvariant(t *testing.T) {
	// 不论团队数量和工作日数量如何，每个团队都恰好有相邻的两天
	for _, tc := range []struct {
		teamCount int
		maxDays   int32
	}{
		{1, 4}, {3, 4}, {8, 4}, {1, 5}, {5, 5}, {20, 5}, {100, 5},
	} {
		t.Run(fmt.Sprintf("%d个团队%d天", tc.teamCount, tc.maxDays), func(t *testing.T) {
			schedule, err := Generate(makeTeams(tc.teamCount), tc.maxDays, RandomShuffle)
			require.NoError(t, err)
			require.Len(t, schedule, tc.teamCount)

			scheduled := make(map[int64]bool)
			for _, entry := range schedule {
				require.Len(t, entry.Days, 2)
				assert.Equal(t, entry.Days[0]+1, entry.Days[1])
				assert.GreaterOrEqual(t, entry.Days[0], int32(0))
				assert.Less(t, entry.Days[1], tc.maxDays)
				scheduled[entry.TeamID] = true
			}

			// 每个团队都被安排且只安排一次
			assert.Len(t, scheduled, tc.teamCount)
		})
	}
}

func TestGenerateLoadBalance(t *testing.T) {
	// 贪心算法的均衡性：任意两个相邻两天组合的负载之和相差不超过 ceil(k / 组合数)
	for _, teamCount := range []int{4, 7, 12, 30} {
		t.Run(fmt.Sprintf("%d个团队", teamCount), func(t *testing.T) {
			const maxDays int32 = 5
			schedule, err := Generate(makeTeams(teamCount), maxDays, RandomShuffle)
			require.NoError(t, err)

			load := make([]int, maxDays)
			for _, entry := range schedule {
				load[entry.Days[0]]++
				load[entry.Days[1]]++
			}

			minSum, maxSum := 2*teamCount, 0
			for d := int32(0); d < maxDays-1; d++ {
				sum := load[d] + load[d+1]
				if sum < minSum {
					minSum = sum
				}
				if sum > maxSum {
					maxSum = sum
				}
			}

			bound := (teamCount + int(maxDays) - 2) / (int(maxDays) - 1)
			assert.LessOrEqual(t, maxSum-minSum, bound)
		})
	}
}

func TestGenerateFourDayWeek(t *testing.T) {
	// includeFriday=false：四天三个组合，三个团队正好一组一个，没有空闲日
	teams := makeTeams(3)
	teams[0].Capacity = 2
	teams[1].Capacity = 3
	teams[2].Capacity = 1

	schedule, err := Generate(teams, 4, keepOrder)
	require.NoError(t, err)
	require.Len(t, schedule, 3)

	assignment := AssignmentFromSchedule(schedule)
	for day := int32(0); day < 4; day++ {
		assert.NotEmpty(t, assignment.TeamsOnDay(day), "第 %d 天不应该空闲", day)
	}

	// 固定顺序下的贪心结果是确定的
	assert.Equal(t, []int32{0, 1}, assignment.DaysForTeam(1))
	assert.Equal(t, []int32{2, 3}, assignment.DaysForTeam(2))
	assert.Equal(t, []int32{0, 1}, assignment.DaysForTeam(3))
	assert.Equal(t, []int64{1, 3}, assignment.TeamsOnDay(1))
}

func TestGenerateStarvationRepair(t *testing.T) {
	t.Run("周五空闲时把相邻团队平移过来", func(t *testing.T) {
		// 两个团队在五天的轴上先占据 [0,1] 和 [2,3]，修复后周五由相邻的团队补上
		schedule, err := Generate(makeTeams(2), 5, keepOrder)
		require.NoError(t, err)

		assignment := AssignmentFromSchedule(schedule)
		assert.Equal(t, []int32{0, 1}, assignment.DaysForTeam(1))
		assert.Equal(t, []int32{3, 4}, assignment.DaysForTeam(2))
	})

	t.Run("没有相邻团队时空闲日保持空闲", func(t *testing.T) {
		// 单个团队会被修复逐日向后平移，但不可能同时覆盖五天
		schedule, err := Generate(makeTeams(1), 5, keepOrder)
		require.NoError(t, err)
		require.Len(t, schedule, 1)
		require.Len(t, schedule[0].Days, 2)
		assert.Equal(t, schedule[0].Days[0]+1, schedule[0].Days[1])
	})
}

func TestGenerateEdgeCases(t *testing.T) {
	t.Run("没有团队时不做任何事", func(t *testing.T) {
		schedule, err := Generate(nil, 5, RandomShuffle)
		require.NoError(t, err)
		assert.Empty(t, schedule)
	})

	t.Run("工作日轴非法时报错", func(t *testing.T) {
		_, err := Generate(makeTeams(3), 1, RandomShuffle)
		assert.ErrorIs(t, err, ErrInvalidAxis)
	})

	t.Run("不修改调用方传入的团队切片", func(t *testing.T) {
		teams := makeTeams(10)
		ids := make([]int64, len(teams))
		for i, team := range teams {
			ids[i] = team.ID
		}

		_, err := Generate(teams, 5, RandomShuffle)
		require.NoError(t, err)

		for i, team := range teams {
			assert.Equal(t, ids[i], team.ID)
		}
	})
}
