package seed

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/repository"
)

// SeedRealData 从 CSV 文件导入真实的团队和成员数据。
// 文件每行一个成员，列依次为：团队名、团队容量、成员姓名、邮箱、座位号，
// 后两列可以为空
func SeedRealData(r *repository.Repository) {
	file, err := os.Open("./internal/seed/data/teams.csv")
	if err != nil {
		slog.Error("打开文件失败", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// 跳过表头
	if _, err := reader.Read(); err != nil {
		slog.Error("读取表头失败", "error", err)
		return
	}

	// 同名团队只创建一次
	teamsByName := make(map[string]*domain.Team)
	memberCnt := 0

	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			slog.Error("读取文件失败", "error", err)
			return
		}

		if len(row) < 5 {
			slog.Error("数据列数不足", "row", row)
			continue
		}

		teamName := row[0]
		if teamName == "" {
			slog.Error("没有找到团队名", "row", row)
			continue
		}

		team, exists := teamsByName[teamName]
		if !exists {
			capacity, err := strconv.Atoi(row[1])
			if err != nil || capacity <= 0 {
				slog.Error("团队容量非法", "capacity", row[1])
				continue
			}

			team = &domain.Team{
				Name:     teamName,
				Color:    domain.TeamColors[len(teamsByName)%len(domain.TeamColors)],
				Capacity: int32(capacity),
			}

			if err := r.CreateTeam(team); err != nil {
				slog.Error("插入团队失败", "error", err)
				continue
			}

			teamsByName[teamName] = team
		}

		member := &domain.TeamMember{
			TeamID: team.ID,
			Name:   row[2],
		}
		if row[3] != "" {
			email := row[3]
			member.Email = &email
		}
		if row[4] != "" {
			chair, err := strconv.Atoi(row[4])
			if err != nil {
				slog.Error("座位号非法", "chairNumber", row[4])
				continue
			}
			chairNumber := int32(chair)
			member.ChairNumber = &chairNumber
		}

		if err := r.CreateMember(member); err != nil {
			slog.Error("插入成员失败", "error", err)
			continue
		}

		memberCnt++
	}

	slog.Info("插入数据完成", "teams", len(teamsByName), "members", memberCnt)
}
