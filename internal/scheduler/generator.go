package scheduler

import (
	"math"
	"math/rand"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

// ShuffleFunc 用于打乱团队的遍历顺序。生成器在多个组合负载相同时偏向下标小的组合，
// 打乱顺序可以避免每次都是同一批团队占据周初，测试时可以传入固定顺序来获得确定的结果
type ShuffleFunc func(teams []*domain.Team)

func RandomShuffle(teams []*domain.Team) {
	rand.Shuffle(len(teams), func(i, j int) {
		teams[i], teams[j] = teams[j], teams[i]
	})
}

// Generate 为每一个团队分配连续的两天到场日，使各天的团队数尽量均衡。
// 算法是单趟贪心：每个团队选择当前负载之和最小的相邻两天组合，负载相同时取下标最小的组合。
// 贪心结束后再做一次空闲日修复：若某天没有任何团队，就把第一个紧邻该天的团队平移过来补上。
// 若没有紧邻的团队则保持原样，这是启发式算法可接受的局限
func Generate(teams []*domain.Team, maxDays int32, shuffle ShuffleFunc) ([]domain.TeamSchedule, error) {
	pairs, err := ConsecutivePairs(maxDays)
	if err != nil {
		return nil, err
	}

	if len(teams) == 0 {
		return []domain.TeamSchedule{}, nil
	}

	shuffled := make([]*domain.Team, len(teams))
	copy(shuffled, teams)
	if shuffle != nil {
		shuffle(shuffled)
	}

	load := make([]int32, maxDays)
	schedule := make([]domain.TeamSchedule, 0, len(shuffled))

	for _, team := range shuffled {
		best := pairs[0]
		var minLoad int32 = math.MaxInt32

		for _, pair := range pairs {
			if l := load[pair.First] + load[pair.Second]; l < minLoad {
				minLoad = l
				best = pair
			}
		}

		load[best.First]++
		load[best.Second]++
		schedule = append(schedule, domain.TeamSchedule{TeamID: team.ID, Days: best.Days()})
	}

	// 空闲日修复：把第一个紧邻空闲日的团队平移过来，每个空闲日只平移一个团队
	for day := int32(0); day < maxDays; day++ {
		if load[day] != 0 {
			continue
		}

		for i := range schedule {
			d1, d2 := schedule[i].Days[0], schedule[i].Days[1]
			if day != d1-1 && day != d2+1 {
				continue
			}

			load[d1]--
			load[d2]--

			if day < d1 {
				schedule[i].Days = []int32{day, day + 1}
			} else {
				schedule[i].Days = []int32{day - 1, day}
			}

			load[schedule[i].Days[0]]++
			load[schedule[i].Days[1]]++
			break
		}
	}

	return schedule, nil
}
