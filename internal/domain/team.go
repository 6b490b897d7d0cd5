package domain

import (
	"time"
)

type Team struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Color     string       `json:"color"`
	Capacity  int32        `json:"capacity"` // 团队到场时占用的座位数
	Members   []TeamMember `json:"members"`
	CreatedAt time.Time    `json:"createdAt"`
	Version   int32        `json:"-"`
}

type TeamMember struct {
	ID          int64   `json:"id"`
	TeamID      int64   `json:"teamId"`
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	ChairNumber *int32  `json:"chairNumber"`
}

// 团队的预设颜色，创建团队时若未指定颜色则按顺序取第一个未被占用的
var TeamColors = []string{
	"hsl(206 100% 42%)",
	"hsl(142 71% 45%)",
	"hsl(280 65% 60%)",
	"hsl(25 95% 53%)",
	"hsl(340 82% 52%)",
	"hsl(180 60% 45%)",
	"hsl(45 93% 47%)",
	"hsl(220 70% 50%)",
}

func NextTeamColor(teams []*Team) string {
	used := make(map[string]bool, len(teams))
	for _, t := range teams {
		used[t.Color] = true
	}

	for _, color := range TeamColors {
		if !used[color] {
			return color
		}
	}

	return TeamColors[len(teams)%len(TeamColors)]
}
